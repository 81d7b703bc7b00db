package object

import (
	"go.uber.org/zap"

	"github.com/nvuaille/nwcread/constants"
	"github.com/nvuaille/nwcread/logging"
)

// defaultStemLength applies when a record carries no stem byte.
const defaultStemLength = 7

// durationName builds the rendered duration, shared by notes, rests and
// chord members. The dot attribute byte encodes double dot in bit 0x01
// and single dot in bit 0x04.
func durationName(duration int, dotAttr byte, grace bool) string {
	name := constants.DurationNames[0]
	if duration >= 0 && duration < len(constants.DurationNames) {
		name = constants.DurationNames[duration]
	} else {
		logging.L().Warn("duration index out of range", zap.Int("duration", duration))
	}

	switch {
	case dotAttr&0x01 != 0:
		name += ",DblDotted"
	case dotAttr&0x04 != 0:
		name += ",Dotted"
	}
	if grace {
		name += ",Grace"
	}
	return name
}

// alterationName maps the low three bits of the second attribute byte;
// out-of-table values mean no alteration.
func alterationName(attr2 int) string {
	idx := attr2 & 0x07
	if idx < len(constants.AlterationNames) {
		return constants.AlterationNames[idx]
	}
	return ""
}

// tieInfo reads the tie flag from the first attribute byte.
func tieInfo(attr1 byte) string {
	if attr1&0x10 != 0 {
		return "^"
	}
	return ""
}

// pitchClass folds a staff position onto 0..6, matching the renderer's
// alteration memory keys. Go's % keeps the sign, so fold twice.
func pitchClass(pos int) int {
	return ((pos % 7) + 7) % 7
}
