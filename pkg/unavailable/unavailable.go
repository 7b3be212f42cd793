package unavailable

import (
	"math"

	"github.com/sirupsen/logrus"
)

// HourRange is a fractional hour-of-day interval, e.g. {9.5, 17}.
type HourRange struct {
	Start float64
	End   float64
}

// Block is a pixel rectangle in the hour-row coordinate space.
type Block struct {
	Top    float64
	Height float64
}

// Options bounds the visible day and scales blocks to pixels.
type Options struct {
	DayStart        float64
	DayEnd          float64
	HourBlockHeight float64
}

func (o Options) withDefaults() Options {
	if o.DayEnd == 0 {
		o.DayEnd = 24
	}
	if o.HourBlockHeight == 0 {
		o.HourBlockHeight = 100
	}
	return o
}

// Builder converts unavailable-hours ranges into blocks for graying out.
// Invalid ranges are reported to the diagnostic logger and dropped; they
// never abort the remaining ranges.
type Builder struct {
	log logrus.FieldLogger
}

func NewBuilder(log logrus.FieldLogger) *Builder {
	return &Builder{log}
}

// Build validates, clamps, and converts the given ranges, preserving
// input order minus dropped entries. Overlapping ranges yield independent
// blocks; no merging is performed.
func (b *Builder) Build(ranges []HourRange, opts Options) []Block {
	opts = opts.withDefaults()
	totalDayHeight := (opts.DayEnd - opts.DayStart) * opts.HourBlockHeight

	blocks := make([]Block, 0, len(ranges))
	for _, r := range ranges {
		if !validHour(r.Start) || !validHour(r.End) {
			b.log.Warnf("dropping unavailable hours range [%v, %v): hours must be in [0, 25)", r.Start, r.End)
			continue
		}
		if r.Start >= r.End {
			b.log.Warnf("dropping unavailable hours range [%v, %v): start must be before end", r.Start, r.End)
			continue
		}

		startFixed := math.Max(r.Start, opts.DayStart)
		endFixed := math.Min(r.End, opts.DayEnd)

		blocks = append(blocks, Block{
			Top:    (startFixed - opts.DayStart) / (opts.DayEnd - opts.DayStart) * totalDayHeight,
			Height: (endFixed - startFixed) * opts.HourBlockHeight,
		})
	}
	return blocks
}

func validHour(h float64) bool {
	return h >= 0 && h < 25
}
