package domain

import "fmt"

// Field is one of the eight numerology field categories a digit pair can
// belong to. FieldUnknown is the zero value and labels pairs that are not in
// any catalogue.
type Field int

const (
	FieldUnknown Field = iota
	FieldResting
	FieldLifeForce
	FieldHeavenDoctor
	FieldLongevity
	FieldDoom
	FieldSixEvils
	FieldCalamity
	FieldFiveGhosts
)

// Fields lists the eight named fields in catalogue order (Unknown excluded).
var Fields = []Field{
	FieldResting,
	FieldLifeForce,
	FieldHeavenDoctor,
	FieldLongevity,
	FieldDoom,
	FieldSixEvils,
	FieldCalamity,
	FieldFiveGhosts,
}

// GoodFields are the fields a synthesized numeral is built from.
var GoodFields = []Field{FieldResting, FieldLifeForce, FieldHeavenDoctor, FieldLongevity}

// BadFields are the fields that create a compensation need.
var BadFields = []Field{FieldDoom, FieldSixEvils, FieldCalamity, FieldFiveGhosts}

var fieldNames = [...]string{
	FieldUnknown:      "Unknown",
	FieldResting:      "Resting",
	FieldLifeForce:    "LifeForce",
	FieldHeavenDoctor: "HeavenDoctor",
	FieldLongevity:    "Longevity",
	FieldDoom:         "Doom",
	FieldSixEvils:     "SixEvils",
	FieldCalamity:     "Calamity",
	FieldFiveGhosts:   "FiveGhosts",
}

// Traditional labels, used by display surfaces next to the English name.
var fieldLabels = [...]string{
	FieldUnknown:      "未知",
	FieldResting:      "伏位",
	FieldLifeForce:    "生氣",
	FieldHeavenDoctor: "天醫",
	FieldLongevity:    "延年",
	FieldDoom:         "絕命",
	FieldSixEvils:     "六煞",
	FieldCalamity:     "禍害",
	FieldFiveGhosts:   "五鬼",
}

func (f Field) valid() bool {
	return f >= FieldUnknown && f <= FieldFiveGhosts
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label returns the traditional name of the field.
func (f Field) Label() string {
	if !f.valid() {
		return ""
	}
	return fieldLabels[f]
}

// IsGood reports whether f is one of the four favourable fields.
func (f Field) IsGood() bool {
	switch f {
	case FieldResting, FieldLifeForce, FieldHeavenDoctor, FieldLongevity:
		return true
	}
	return false
}

// IsBad reports whether f is one of the four unfavourable fields.
func (f Field) IsBad() bool {
	switch f {
	case FieldDoom, FieldSixEvils, FieldCalamity, FieldFiveGhosts:
		return true
	}
	return false
}

// ParseField accepts either the English name or the traditional label.
func ParseField(s string) (Field, error) {
	for i, n := range fieldNames {
		if n == s || fieldLabels[i] == s {
			return Field(i), nil
		}
	}
	return FieldUnknown, fmt.Errorf("unknown field %q", s)
}

// MarshalText encodes the field by its English name.
func (f Field) MarshalText() ([]byte, error) {
	if !f.valid() {
		return nil, fmt.Errorf("invalid field %d", int(f))
	}
	return []byte(fieldNames[f]), nil
}

// UnmarshalText accepts the English name or the traditional label.
func (f *Field) UnmarshalText(b []byte) error {
	v, err := ParseField(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
