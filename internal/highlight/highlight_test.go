package highlight

import "testing"

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no matches", "Plain description.", "Plain description."},
		{"empty", "", ""},
		{"plural subcontrols", "uses QSK_SUBCONTROLS here", "uses `QSK_SUBCONTROLS` here"},
		{"singular subcontrol", "one QSK_SUBCONTROL(", "one `QSK_SUBCONTROL`("},
		{"states", "QSK_STATES and QSK_STATE", "`QSK_STATES` and `QSK_STATE`"},
		{"first user state", "starts at QskAspect::FirstUserState", "starts at `QskAspect::FirstUserState`"},
		{"first system state", "QskAspect::FirstSystemState << 1", "`QskAspect::FirstSystemState` << 1"},
		{"keywords", "a switch with a case", "a `switch` with a `case`"},
		{"substring keyword", "showcase", "show`case`"},
		{"update sub node", "overrides updateSubNode", "overrides `updateSubNode`"},
		{"skinnable keeps casing", "A Skinnable control", "A `Skinnable` control"},
		{"skinnable inside identifier", "QskSkinnable", "Qsk`Skinnable`"},
		{"skinlet needs leading space", "the Skinlet", "the ` Skinlet`"},
		{"skinlet mid sentence", "the Skinlet draws", "the ` Skinlet` draws"},
		{"skinlet at start not wrapped", "skinlet first", "skinlet first"},
		{"subcontrol needs leading space", "each subcontrol", "each ` subcontrol`"},
		{"subcontrol plural", "all Subcontrols", "all ` Subcontrol`s"},
		{
			"mixed",
			"Transforms a QSK_SUBCONTROLS declaration into a switch over each subcontrol of the skinnable",
			"Transforms a `QSK_SUBCONTROLS` declaration into a `switch` over each ` subcontrol` of the `skinnable`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokens(tt.in); got != tt.want {
				t.Errorf("Tokens(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokensIdempotent(t *testing.T) {
	inputs := []string{
		"uses QSK_SUBCONTROLS here",
		"A Skinnable control with a skinlet and a subcontrol",
		"switch (state) { case QskAspect::FirstUserState: }",
		"QskSkinnable::updateSubNode in the showcase",
		"the Skinlet draws each Subcontrol",
	}

	for _, in := range inputs {
		once := Tokens(in)
		twice := Tokens(once)
		if once != twice {
			t.Errorf("Tokens not idempotent for %q:\n once:  %q\n twice: %q", in, once, twice)
		}
	}
}

func TestTokensLeavesExistingSpans(t *testing.T) {
	in := "see `my switch case` for details"
	if got := Tokens(in); got != in {
		t.Errorf("Tokens(%q) = %q, want unchanged", in, got)
	}
}
