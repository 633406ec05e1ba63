package showmore

// Observer receives click notifications that the widget does not consume
// itself.
type Observer interface {
	// OnClicked fires for a tap that did not land on the affix.
	OnClicked()
	// OnLongClicked fires for any long press.
	OnLongClicked()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Clicked     func()
	LongClicked func()
}

func (o ObserverFuncs) OnClicked() {
	if o.Clicked != nil {
		o.Clicked()
	}
}

func (o ObserverFuncs) OnLongClicked() {
	if o.LongClicked != nil {
		o.LongClicked()
	}
}

// InteractionState disambiguates the generic region click from the affix
// click that precedes it for the same tap.
type InteractionState int

const (
	Idle InteractionState = iota
	AffixConsumed
	LongPressed
)

func (s InteractionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case AffixConsumed:
		return "affix-consumed"
	case LongPressed:
		return "long-pressed"
	default:
		return "unknown"
	}
}
