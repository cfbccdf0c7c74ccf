package power

import (
	"fmt"
	"testing"
)

func pmsetOutput(label, amount string) string {
	return fmt.Sprintf("Now drawing from '%s'\n"+
		"-InternalBattery-0 (id=4522083)\t%s; charged; 0:00 remaining present: true\n    ", label, amount)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Source
	}{
		{
			name:  "garbage",
			input: "whoa",
			want:  Source{},
		},
		{
			name:  "empty",
			input: "",
			want:  Source{},
		},
		{
			name:  "battery at 100",
			input: pmsetOutput("Battery Power", "100%"),
			want:  BatterySource(100),
		},
		{
			name:  "battery at 10",
			input: pmsetOutput("Battery Power", "10%"),
			want:  BatterySource(10),
		},
		{
			name:  "battery at 1",
			input: pmsetOutput("Battery Power", "1%"),
			want:  BatterySource(1),
		},
		{
			name:  "battery at 0",
			input: pmsetOutput("Battery Power", "0%"),
			want:  BatterySource(0),
		},
		{
			name:  "invalid amount",
			input: pmsetOutput("Battery Power", "abc%"),
			want:  Source{},
		},
		{
			name:  "amount without percent sign",
			input: pmsetOutput("Battery Power", "87"),
			want:  Source{},
		},
		{
			name:  "doubled percent sign",
			input: pmsetOutput("Battery Power", "87%%"),
			want:  Source{},
		},
		{
			name:  "explicit plus sign",
			input: pmsetOutput("Battery Power", "+5%"),
			want:  Source{},
		},
		{
			name:  "amount out of range",
			input: pmsetOutput("Battery Power", "101%"),
			want:  Source{},
		},
		{
			name:  "negative amount",
			input: pmsetOutput("Battery Power", "-5%"),
			want:  Source{},
		},
		{
			name:  "ac power",
			input: pmsetOutput("AC Power", "100%"),
			want:  OtherSource("AC Power"),
		},
		{
			name:  "ac power with invalid amount",
			input: pmsetOutput("AC Power", "abc%"),
			want:  Source{},
		},
		{
			name:  "missing label",
			input: "Now drawing from AC\n-InternalBattery-0 (id=1)\t50%; charging; 1:00 remaining present: true\n",
			want:  Source{},
		},
		{
			name:  "only one line",
			input: "Now drawing from 'Battery Power'",
			want:  Source{},
		},
		{
			name:  "missing percentage field",
			input: "Now drawing from 'Battery Power'\n-InternalBattery-0; charged\n",
			want:  Source{},
		},
		{
			name:  "crlf line endings",
			input: "Now drawing from 'Battery Power'\r\n-InternalBattery-0 (id=4522083)\t42%; discharging; 3:10 remaining present: true\r\n",
			want:  BatterySource(42),
		},
		{
			name:  "unclosed quote",
			input: "Now drawing from 'UPS Power\n-InternalBattery-0 (id=1)\t50%; charging\n",
			want:  OtherSource("UPS Power"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyEveryPercentage(t *testing.T) {
	for p := 0; p <= 100; p++ {
		amount := fmt.Sprintf("%d%%", p)
		if got, want := Classify(pmsetOutput("Battery Power", amount)), BatterySource(uint8(p)); got != want {
			t.Errorf("Classify(%s on battery) = %v, want %v", amount, got, want)
		}
		if got, want := Classify(pmsetOutput("AC Power", amount)), OtherSource("AC Power"); got != want {
			t.Errorf("Classify(%s on AC) = %v, want %v", amount, got, want)
		}
	}
}

func TestSourceGlyph(t *testing.T) {
	if tok, ok := BatterySource(55).Glyph(); !ok || tok != Sixty {
		t.Errorf("BatterySource(55).Glyph() = %v, %v, want %v, true", tok, ok, Sixty)
	}
	if _, ok := OtherSource("AC Power").Glyph(); ok {
		t.Error("OtherSource should have no glyph")
	}
	if _, ok := (Source{}).Glyph(); ok {
		t.Error("unknown source should have no glyph")
	}
}
