package domain

// Profile groups named inputs that are analyzed together.
type Profile struct {
	Name     string
	Inputs   []ProfileInput
	Generate GenerateOverride
}

// ProfileInput is one labelled value of a profile.
type ProfileInput struct {
	Label string
	Input Input
}

// GenerateOverride holds the generation settings a profile sets explicitly.
// Nil fields keep the workspace defaults.
type GenerateOverride struct {
	Length *int
	Count  *int
	Pad    *bool
	Affix  *Affix
}

// Apply returns base with every set field replaced.
func (o GenerateOverride) Apply(base GenerateRequest) GenerateRequest {
	if o.Length != nil {
		base.Length = *o.Length
	}
	if o.Count != nil {
		base.Count = *o.Count
	}
	if o.Pad != nil {
		base.Pad = *o.Pad
	}
	if o.Affix != nil {
		base.Affix = *o.Affix
	}
	return base
}

// ProfileRef is a lightweight reference to a profile file on disk.
type ProfileRef struct {
	Name string
	Path string
}

// WorkspaceSpec describes where a workspace is created.
type WorkspaceSpec struct {
	Root string
}
