package resolve

import "testing"

func TestOverridesPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		overrides  Overrides
		wantValue  any
		wantOrigin Origin
	}{
		{
			name:       "no overrides",
			overrides:  Overrides{},
			wantValue:  "db1",
			wantOrigin: OriginProfile,
		},
		{
			name: "inventory beats profile default",
			overrides: Overrides{
				Inventory: map[string]any{"db_host": "db2"},
			},
			wantValue:  "db2",
			wantOrigin: OriginInventory,
		},
		{
			name: "caller scope beats inventory",
			overrides: Overrides{
				Inventory: map[string]any{"db_host": "db2"},
				Caller:    map[string]any{"db_host": "db2b"},
			},
			wantValue:  "db2b",
			wantOrigin: OriginCaller,
		},
		{
			name: "call site beats everything",
			overrides: Overrides{
				Inventory: map[string]any{"db_host": "db2"},
				Caller:    map[string]any{"db_host": "db2b"},
				CallSite:  map[string]any{"db_host": "db3"},
			},
			wantValue:  "db3",
			wantOrigin: OriginCallSite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, origin := tt.overrides.resolve("db_host", "db1")

			if val != tt.wantValue {
				t.Errorf("value = %v, want %v", val, tt.wantValue)
			}

			if origin != tt.wantOrigin {
				t.Errorf("origin = %v, want %v", origin, tt.wantOrigin)
			}
		})
	}
}

func TestOverridesOtherKeysUntouched(t *testing.T) {
	overrides := Overrides{
		CallSite: map[string]any{"other_key": "x"},
	}

	val, origin := overrides.resolve("db_host", "db1")
	if val != "db1" || origin != OriginProfile {
		t.Errorf("unrelated override applied: %v (%v)", val, origin)
	}
}
