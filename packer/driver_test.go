package packer_test

import (
	"testing"

	"github.com/katalvlaran/cargopack/packer"
	"github.com/katalvlaran/cargopack/placement"
	"github.com/katalvlaran/cargopack/uld"
	"github.com/katalvlaran/cargopack/validator"
	"github.com/stretchr/testify/require"
)

func TestPack_SinglePriorityParcel(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 100, W: 100, H: 100}, 1000)
	p := uld.NewParcel("P1", uld.Dims{L: 40, W: 40, H: 40}, 10, uld.Priority, 0)

	result, err := packer.Pack([]*uld.ULD{u}, []*uld.Parcel{p})
	require.NoError(t, err)
	require.Len(t, result.Packed, 1)
	require.Empty(t, result.Unpacked)
	require.Equal(t, 1, result.ULDsWithPriority)
	require.True(t, p.Committed())
}

func TestPack_TwoPriorityParcelsShareOneULD(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 100, W: 100, H: 100}, 1000)
	p1 := uld.NewParcel("P1", uld.Dims{L: 50, W: 100, H: 100}, 10, uld.Priority, 0)
	p2 := uld.NewParcel("P2", uld.Dims{L: 50, W: 100, H: 100}, 10, uld.Priority, 0)

	result, err := packer.Pack([]*uld.ULD{u}, []*uld.Parcel{p1, p2})
	require.NoError(t, err)
	require.Len(t, result.Packed, 2)
	require.Equal(t, 1, result.ULDsWithPriority)
}

func TestPack_EightSmallParcelsAllFindRoom(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 20, W: 20, H: 20}, 1000)
	var parcels []*uld.Parcel
	for i := 0; i < 8; i++ {
		parcels = append(parcels, uld.NewParcel("P", uld.Dims{L: 5, W: 5, H: 5}, 1, uld.Priority, 0))
	}

	result, err := packer.Pack([]*uld.ULD{u}, parcels)
	require.NoError(t, err)
	require.Len(t, result.Packed, 8)
}

func TestPack_PriorityUnpackableIsFatal(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 10, W: 10, H: 10}, 1000)
	parcels := make([]*uld.Parcel, 0, 9)
	for i := 0; i < 9; i++ {
		parcels = append(parcels, uld.NewParcel("P", uld.Dims{L: 5, W: 5, H: 5}, 1, uld.Priority, 0))
	}

	result, err := packer.Pack([]*uld.ULD{u}, parcels)
	require.ErrorIs(t, err, packer.ErrPriorityUnpackable)
	require.NotEmpty(t, result.Unpacked)
	require.Less(t, len(result.Packed), 9)
}

func TestPack_PriorityThenEconomyAcrossTwoULDs(t *testing.T) {
	big := uld.NewULD("BIG", uld.Dims{L: 100, W: 100, H: 100}, 1000)
	small := uld.NewULD("SMALL", uld.Dims{L: 20, W: 20, H: 20}, 1000)

	priority := uld.NewParcel("PRI", uld.Dims{L: 90, W: 90, H: 90}, 50, uld.Priority, 0)
	economy := uld.NewParcel("ECO", uld.Dims{L: 10, W: 10, H: 10}, 5, uld.Economy, 7)

	result, err := packer.Pack([]*uld.ULD{big, small}, []*uld.Parcel{priority, economy})
	require.NoError(t, err)
	require.Len(t, result.Packed, 2)
	require.Equal(t, "BIG", priority.ULDID)
}

func TestPack_EconomyLeftUnpackedAccumulatesCost(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 10, W: 10, H: 10}, 1000)
	// Economy parcels are tried in descending delay-cost/volume order, so
	// FITS (the higher delay cost) takes the only slot and NOPE is left over.
	fits := uld.NewParcel("FITS", uld.Dims{L: 10, W: 10, H: 10}, 1, uld.Economy, 12)
	doesNotFit := uld.NewParcel("NOPE", uld.Dims{L: 10, W: 10, H: 10}, 1, uld.Economy, 11)

	result, err := packer.Pack([]*uld.ULD{u}, []*uld.Parcel{fits, doesNotFit})
	require.NoError(t, err)
	require.Len(t, result.Packed, 1)
	require.Len(t, result.Unpacked, 1)
	require.Equal(t, int64(11), result.TotalCost)
}

func TestPack_SpreadPenaltyChargedPerULDWithPriority(t *testing.T) {
	u1 := uld.NewULD("U1", uld.Dims{L: 50, W: 50, H: 50}, 1000)
	u2 := uld.NewULD("U2", uld.Dims{L: 50, W: 50, H: 50}, 1000)
	p1 := uld.NewParcel("P1", uld.Dims{L: 40, W: 40, H: 40}, 10, uld.Priority, 0)
	p2 := uld.NewParcel("P2", uld.Dims{L: 40, W: 40, H: 40}, 10, uld.Priority, 0)

	result, err := packer.Pack([]*uld.ULD{u1, u2}, []*uld.Parcel{p1, p2}, packer.WithSpreadPenalty(100))
	require.NoError(t, err)
	require.Equal(t, 2, result.ULDsWithPriority)
	require.Equal(t, int64(200), result.TotalCost)
}

func TestPack_SpaceTreeRepresentation(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 100, W: 100, H: 100}, 1000)
	p := uld.NewParcel("P1", uld.Dims{L: 40, W: 40, H: 40}, 10, uld.Priority, 0)

	result, err := packer.Pack([]*uld.ULD{u}, []*uld.Parcel{p}, packer.WithRepresentation(packer.SpaceTreeRepresentation))
	require.NoError(t, err)
	require.Len(t, result.Packed, 1)
}

func TestPack_ConcurrentProbing(t *testing.T) {
	u1 := uld.NewULD("U1", uld.Dims{L: 50, W: 50, H: 50}, 1000)
	u2 := uld.NewULD("U2", uld.Dims{L: 50, W: 50, H: 50}, 1000)
	p := uld.NewParcel("P1", uld.Dims{L: 40, W: 40, H: 40}, 10, uld.Priority, 0)

	result, err := packer.Pack([]*uld.ULD{u1, u2}, []*uld.Parcel{p}, packer.WithConcurrentProbing())
	require.NoError(t, err)
	require.Len(t, result.Packed, 1)
	require.True(t, p.Committed())
}

func TestPack_MixedRotationPlacement(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 30, W: 20, H: 10}, 1000)
	p := uld.NewParcel("P1", uld.Dims{L: 10, W: 30, H: 20}, 5, uld.Priority, 0)

	result, err := packer.Pack([]*uld.ULD{u}, []*uld.Parcel{p}, packer.WithPlacementOptions(
		placement.Options{RegionPolicy: placement.FirstFind, OrientationPolicy: placement.FirstFitRotation},
	))
	require.NoError(t, err)
	require.Len(t, result.Packed, 1)
	require.NotEqual(t, uld.Dims{L: 10, W: 30, H: 20}, result.Packed[0].Orientation)
}

func TestPack_OrderIndependenceOfFinalCost(t *testing.T) {
	newSetup := func() (*uld.ULD, []*uld.Parcel) {
		u := uld.NewULD("U1", uld.Dims{L: 100, W: 100, H: 100}, 1000)
		parcels := []*uld.Parcel{
			uld.NewParcel("A", uld.Dims{L: 30, W: 30, H: 30}, 5, uld.Economy, 9),
			uld.NewParcel("B", uld.Dims{L: 20, W: 20, H: 20}, 5, uld.Economy, 3),
			uld.NewParcel("C", uld.Dims{L: 60, W: 60, H: 60}, 5, uld.Priority, 0),
		}
		return u, parcels
	}

	u1, parcels1 := newSetup()
	result1, err1 := packer.Pack([]*uld.ULD{u1}, parcels1)
	require.NoError(t, err1)

	u2, parcels2 := newSetup()
	reversed := []*uld.Parcel{parcels2[2], parcels2[1], parcels2[0]}
	result2, err2 := packer.Pack([]*uld.ULD{u2}, reversed)
	require.NoError(t, err2)

	require.Equal(t, result1.TotalCost, result2.TotalCost)
	require.Len(t, result2.Packed, len(result1.Packed))
}

func TestPack_ValidatorAgreesWithDriverOutput(t *testing.T) {
	u := uld.NewULD("U1", uld.Dims{L: 100, W: 100, H: 100}, 1000)
	parcels := []*uld.Parcel{
		uld.NewParcel("A", uld.Dims{L: 30, W: 30, H: 30}, 5, uld.Priority, 0),
		uld.NewParcel("B", uld.Dims{L: 20, W: 20, H: 20}, 5, uld.Economy, 4),
	}

	result, err := packer.Pack([]*uld.ULD{u}, parcels)
	require.NoError(t, err)
	require.Len(t, result.Packed, 2)

	report, err := validator.Validate([]*uld.ULD{u}, result.Packed)
	require.NoError(t, err)
	require.True(t, report.Valid, "driver output violates an invariant: %+v", report.Violations)
}
