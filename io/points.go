package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/nnmath/num"
	"github.com/phil-mansfield/nnmath/vec"
)

// ReadPoints reads the query points named by con.PointsFile.
func ReadPoints[T num.Real](con *QueryConfig) ([]vec.Vec3[T], error) {
	colIdxs := []int{con.XColumn, con.YColumn, con.ZColumn}
	cols, err := table.ReadTable(con.PointsFile, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf(
			"Columns of '%s' have different lengths: %d, %d, %d.",
			con.PointsFile, len(xs), len(ys), len(zs),
		)
	}

	pts := make([]vec.Vec3[T], len(xs))
	for i := range pts {
		pts[i] = vec.New(T(xs[i]), T(ys[i]), T(zs[i]))
	}
	return pts, nil
}
