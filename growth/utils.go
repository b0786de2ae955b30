package growth

import (
	"math"
	"sort"

	"github.com/leona-app/analytics/model"
)

// locateRows finds the adjacent rows (r0, r1) in the age-sorted series such
// that r0.AgeDays <= ageDays <= r1.AgeDays. On an exact age match r0 == r1.
// ok is false when ageDays falls outside the series domain.
func locateRows(rows []model.LMSRow, ageDays int) (r0, r1 model.LMSRow, ok bool) {
	n := len(rows)
	if n == 0 || ageDays < rows[0].AgeDays || ageDays > rows[n-1].AgeDays {
		return model.LMSRow{}, model.LMSRow{}, false
	}

	i := sort.Search(n, func(i int) bool { return rows[i].AgeDays >= ageDays })
	if rows[i].AgeDays == ageDays {
		return rows[i], rows[i], true
	}
	return rows[i-1], rows[i], true
}

// interpolateRow linearly interpolates L, M, S between two adjacent rows at
// the fractional position of ageDays. A no-op when r0 == r1.
func interpolateRow(r0, r1 model.LMSRow, ageDays int) model.LMSRow {
	if r0.AgeDays == r1.AgeDays {
		return r0
	}

	t := float64(ageDays-r0.AgeDays) / float64(r1.AgeDays-r0.AgeDays)
	return model.LMSRow{
		AgeDays: ageDays,
		L:       r0.L + (r1.L-r0.L)*t,
		M:       r0.M + (r1.M-r0.M)*t,
		S:       r0.S + (r1.S-r0.S)*t,
	}
}

func rowMalformed(row model.LMSRow) bool {
	return row.M <= 0 || row.S <= 0
}

// zScore applies the LMS (Box-Cox) transform. Callers guarantee value > 0
// and a well-formed row.
func zScore(row model.LMSRow, value float64) float64 {
	if math.Abs(row.L) > LMSEpsilon {
		return (math.Pow(value/row.M, row.L) - 1) / (row.L * row.S)
	}
	return math.Log(value/row.M) / row.S
}

// valueAtZ inverts the LMS transform: the measurement value sitting exactly
// z standard scores from the row's median.
func valueAtZ(row model.LMSRow, z float64) float64 {
	if math.Abs(row.L) > LMSEpsilon {
		return row.M * math.Pow(1+row.L*row.S*z, 1/row.L)
	}
	return row.M * math.Exp(row.S*z)
}
