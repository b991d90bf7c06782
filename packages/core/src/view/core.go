package view

// ViewEncapsulation represents the encapsulation strategy for component styles
type ViewEncapsulation int

const (
	ViewEncapsulationEmulated ViewEncapsulation = iota
	ViewEncapsulationNone
	ViewEncapsulationShadowDom
)

// ChangeDetectionStrategy represents the change detection strategy
type ChangeDetectionStrategy int

const (
	ChangeDetectionStrategyOnPush ChangeDetectionStrategy = iota
	ChangeDetectionStrategyDefault
)

func (e ViewEncapsulation) String() string {
	switch e {
	case ViewEncapsulationEmulated:
		return "Emulated"
	case ViewEncapsulationNone:
		return "None"
	case ViewEncapsulationShadowDom:
		return "ShadowDom"
	}
	return "Unknown"
}

func (s ChangeDetectionStrategy) String() string {
	switch s {
	case ChangeDetectionStrategyOnPush:
		return "OnPush"
	case ChangeDetectionStrategyDefault:
		return "Default"
	}
	return "Unknown"
}
