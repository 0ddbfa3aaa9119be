package manifest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cargopack/uld"
)

// ReadULDs parses a ULD manifest: one row per ULD, id,L,W,H,capacity.
func ReadULDs(r io.Reader) ([]*uld.ULD, error) {
	rows, err := readRows(r, 5)
	if err != nil {
		return nil, err
	}

	out := make([]*uld.ULD, 0, len(rows))
	for _, row := range rows {
		l, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: ULD %s: bad L %q", ErrMalformedRow, row[0], row[1])
		}
		w, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: ULD %s: bad W %q", ErrMalformedRow, row[0], row[2])
		}
		h, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: ULD %s: bad H %q", ErrMalformedRow, row[0], row[3])
		}
		capacity, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%w: ULD %s: bad capacity %q", ErrMalformedRow, row[0], row[4])
		}
		out = append(out, uld.NewULD(row[0], uld.Dims{L: l, W: w, H: h}, capacity))
	}

	return out, nil
}

// ReadParcels parses a parcel manifest: one row per parcel,
// id,l,w,h,weight,class,delayCost. delayCost is "-" for priority parcels.
func ReadParcels(r io.Reader) ([]*uld.Parcel, error) {
	rows, err := readRows(r, 7)
	if err != nil {
		return nil, err
	}

	out := make([]*uld.Parcel, 0, len(rows))
	for _, row := range rows {
		l, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: parcel %s: bad l %q", ErrMalformedRow, row[0], row[1])
		}
		w, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: parcel %s: bad w %q", ErrMalformedRow, row[0], row[2])
		}
		h, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%w: parcel %s: bad h %q", ErrMalformedRow, row[0], row[3])
		}
		weight, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%w: parcel %s: bad weight %q", ErrMalformedRow, row[0], row[4])
		}

		var class uld.Class
		switch row[5] {
		case "Priority":
			class = uld.Priority
		case "Economy":
			class = uld.Economy
		default:
			return nil, fmt.Errorf("%w: parcel %s: %q", ErrUnknownClass, row[0], row[5])
		}

		delayCost := 0
		if class == uld.Economy {
			delayCost, err = strconv.Atoi(row[6])
			if err != nil {
				return nil, fmt.Errorf("%w: parcel %s: bad delay cost %q", ErrMalformedRow, row[0], row[6])
			}
		} else if row[6] != "-" {
			return nil, fmt.Errorf("%w: parcel %s: priority delay cost must be \"-\", got %q", ErrMalformedRow, row[0], row[6])
		}

		out = append(out, uld.NewParcel(row[0], uld.Dims{L: l, W: w, H: h}, weight, class, delayCost))
	}

	return out, nil
}

// readRows reads every CSV record from r, validating that each has exactly
// width fields.
func readRows(r io.Reader, width int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = width
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	return records, nil
}
