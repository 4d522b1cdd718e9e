package order

// sideEffect mutates an order in addition to the production stage change of
// a transition. Keeping side effects in the table makes the one cross-field
// coupling in the system visible instead of buried in handler code.
type sideEffect func(*Order)

// transition is one row of the production state machine: where an advance
// from From lands, plus any extra field changes it carries.
type transition struct {
	From        ProductionStatus
	To          ProductionStatus
	SideEffects []sideEffect
}

// advanceTable is the complete production state machine. The sequence is
// linear with no branching: antrian → diproses → siap_diambil → selesai.
// ProductionSelesai has no row: it is terminal.
//
// The selesai row carries the system's single automatic link between the two
// status fields: finishing production sets the CUSTOMER status to
// siap_diambil, not selesai. The customer status only reaches selesai when
// the order is physically handed over, which is outside this state machine.
var advanceTable = map[ProductionStatus]transition{
	ProductionAntrian:  {From: ProductionAntrian, To: ProductionDiproses},
	ProductionDiproses: {From: ProductionDiproses, To: ProductionSiapDiambil},
	ProductionSiapDiambil: {
		From: ProductionSiapDiambil,
		To:   ProductionSelesai,
		SideEffects: []sideEffect{
			func(o *Order) { o.Status = StatusSiapDiambil },
		},
	},
}

// Advance moves the order to the next production stage and applies that
// transition's side effects. It returns ErrInvalidTransition, leaving the
// order untouched, when no further stage exists.
func Advance(o *Order) error {
	t, ok := advanceTable[o.ProductionStatus]
	if !ok {
		return ErrInvalidTransition
	}
	o.ProductionStatus = t.To
	for _, apply := range t.SideEffects {
		apply(o)
	}
	return nil
}

// NextProduction returns the stage an advance would move to, and false when
// the order is already terminal. Screens use it to label the advance button.
func NextProduction(p ProductionStatus) (ProductionStatus, bool) {
	t, ok := advanceTable[p]
	if !ok {
		return "", false
	}
	return t.To, true
}
