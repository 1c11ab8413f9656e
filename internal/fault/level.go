package fault

import "strconv"

// Level is a bitmask identifying one runtime error class. The raw values
// mirror the host runtime's error constants so thresholds supplied by the
// host can be used as-is.
type Level uint32

const (
	LevelError          Level = 1 << 0
	LevelWarning        Level = 1 << 1
	LevelParseFailure   Level = 1 << 2
	LevelNotice         Level = 1 << 3
	LevelCoreError      Level = 1 << 4
	LevelCompileError   Level = 1 << 6
	LevelUserError      Level = 1 << 8
	LevelUserWarning    Level = 1 << 9
	LevelUserNotice     Level = 1 << 10
	LevelRuntimeNotice  Level = 1 << 11
	LevelCatchableFatal Level = 1 << 12
	LevelDeprecated     Level = 1 << 13
	LevelUserDeprecated Level = 1 << 14
)

// levelLabels is total for every code the dispatcher recognizes.
var levelLabels = map[Level]string{
	LevelError:          "Error",
	LevelWarning:        "Warning",
	LevelParseFailure:   "Parse Error",
	LevelNotice:         "Notice",
	LevelCoreError:      "Core Error",
	LevelCompileError:   "Compile Error",
	LevelUserError:      "User Error",
	LevelUserWarning:    "User Warning",
	LevelUserNotice:     "User Notice",
	LevelRuntimeNotice:  "Runtime Notice",
	LevelCatchableFatal: "Catchable Fatal Error",
	LevelDeprecated:     "Deprecated",
	LevelUserDeprecated: "User Deprecated",
}

// Label returns the display label for the level. Unrecognized codes fall back
// to their raw numeric representation.
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return strconv.FormatUint(uint64(l), 10)
}

func (l Level) String() string {
	return l.Label()
}

// IsDeprecation reports whether the level belongs to the deprecation class,
// which is logged but never escalated.
func (l Level) IsDeprecation() bool {
	return l&(LevelDeprecated|LevelUserDeprecated) != 0
}

// IsFatal reports whether the level belongs to the class of errors the
// runtime cannot continue from. Only these are of interest to shutdown
// recovery.
func (l Level) IsFatal() bool {
	return l&(LevelError|LevelCoreError|LevelCompileError|LevelParseFailure) != 0
}
