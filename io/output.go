package io

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

var end = binary.LittleEndian

/*
The binary result format is as follows:
    |-- 1 --||-- ... 2 ... --|

    1 - (ResultHeader) Endianness flag (-1 for little endian, 0 for big
        endian), the size of the header, and the number of records.
    2 - ([]ResultRecord) One record per point-shape pair, in the order
        written by the text format.
*/
type ResultHeader struct {
	Endianness int64
	HeaderSize int64
	Count      int64
}

type ResultRecord struct {
	Point    [3]float64
	Shape    int64
	Contains int64
	Distance float64
	Closest  [3]float64
}

func endiannessFlag() int64 {
	if end == binary.LittleEndian {
		return -1
	}
	return 0
}

// WriteResults writes rs as a whitespace-separated text table with a
// commented header line.
func WriteResults(wr io.Writer, rs []Result) error {
	_, err := fmt.Fprintln(wr, "# X Y Z Kind Name Contains Distance ClosestX ClosestY ClosestZ")
	if err != nil {
		return err
	}

	for i := range rs {
		r := &rs[i]
		contains := 0
		if r.Contains {
			contains = 1
		}

		_, err := fmt.Fprintf(
			wr, "%.8g %.8g %.8g %s %s %d %.8g %.8g %.8g %.8g\n",
			r.Point[0], r.Point[1], r.Point[2], r.Kind, r.Name, contains,
			r.Distance, r.Closest[0], r.Closest[1], r.Closest[2],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteResultsBinary writes rs in the binary result format. Shapes are
// identified by their index in the order Evaluate visits them.
func WriteResultsBinary(wr io.Writer, rs []Result) error {
	hd := ResultHeader{}
	hd.Endianness = endiannessFlag()
	hd.HeaderSize = int64(unsafe.Sizeof(hd))
	hd.Count = int64(len(rs))

	if err := binary.Write(wr, end, &hd); err != nil {
		return err
	}

	recs := make([]ResultRecord, len(rs))
	for i := range rs {
		r := &rs[i]
		recs[i] = ResultRecord{
			Point: r.Point, Shape: int64(r.Shape), Distance: r.Distance,
			Closest: r.Closest,
		}
		if r.Contains {
			recs[i].Contains = 1
		}
	}
	return binary.Write(wr, end, recs)
}

// ReadResultsBinary reads a file written by WriteResultsBinary.
func ReadResultsBinary(rd io.Reader) (*ResultHeader, []ResultRecord, error) {
	hd := &ResultHeader{}
	if err := binary.Read(rd, end, hd); err != nil {
		return nil, nil, err
	}
	if hd.Endianness != endiannessFlag() {
		return nil, nil, fmt.Errorf("Result file has endianness flag %d, not %d.",
			hd.Endianness, endiannessFlag())
	} else if hd.HeaderSize != int64(unsafe.Sizeof(*hd)) {
		return nil, nil, fmt.Errorf("Result file has header size %d, not %d.",
			hd.HeaderSize, unsafe.Sizeof(*hd))
	}

	recs := make([]ResultRecord, hd.Count)
	if err := binary.Read(rd, end, recs); err != nil {
		return nil, nil, err
	}
	return hd, recs, nil
}
