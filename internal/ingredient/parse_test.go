package ingredient

import "testing"

func TestParseQuantityUnitName(t *testing.T) {
	tests := []struct {
		input    string
		wantName string
		wantQty  float64
		wantUnit string
	}{
		{"200 g pollo", "Pollo", 200, "g"},
		{"2 cucharadas de aceite de oliva", "Aceite de oliva", 2, "cucharada"},
		{"1/2 taza de arroz", "Arroz", 0.5, "taza"},
		{"1,5 l de leche", "Leche", 1.5, "l"},
		{"0.25 kg ternera", "Ternera", 0.25, "kg"},
		{"500 gr ternera", "Ternera", 500, "g"},
		{"2 kilos de patatas", "Patatas", 2, "kg"},
		{"250 ml de caldo", "Caldo", 250, "ml"},
		{"1 litro de zumo", "Zumo", 1, "l"},
		{"2 ud aguacate", "Aguacate", 2, "unidades"},
		{"3 uds de limón", "Limón", 3, "unidades"},
		{"1 cucharadita de pimentón", "Pimentón", 1, "cucharadita"},
	}
	for _, tt := range tests {
		got := Parse(tt.input)
		if got.Name != tt.wantName {
			t.Errorf("Parse(%q).Name = %q, want %q", tt.input, got.Name, tt.wantName)
		}
		if got.Quantity != tt.wantQty {
			t.Errorf("Parse(%q).Quantity = %v, want %v", tt.input, got.Quantity, tt.wantQty)
		}
		if got.Unit != tt.wantUnit {
			t.Errorf("Parse(%q).Unit = %q, want %q", tt.input, got.Unit, tt.wantUnit)
		}
	}
}

func TestParseInfersUnitWhenAbsent(t *testing.T) {
	tests := []struct {
		input    string
		wantUnit string
	}{
		{"3 huevos", "unidad"},
		{"2 tomates", "pack"},
		{"1 lechuga", "bolsa"},
		{"2 zanahorias", "malla"},
	}
	for _, tt := range tests {
		got := Parse(tt.input)
		if got.Unit != tt.wantUnit {
			t.Errorf("Parse(%q).Unit = %q, want %q", tt.input, got.Unit, tt.wantUnit)
		}
	}
}

func TestParsePureTextFallback(t *testing.T) {
	got := Parse("Sal al gusto")
	if got.Name != "Sal al gusto" {
		t.Errorf("name = %q, want %q", got.Name, "Sal al gusto")
	}
	if got.Quantity != 1 {
		t.Errorf("quantity = %v, want 1", got.Quantity)
	}
	if got.Unit != "" {
		t.Errorf("unit = %q, want empty", got.Unit)
	}
}

func TestParseCapitalizesFirstLetter(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"200 g pollo", "Pollo"},
		{"ñoras secas", "Ñoras secas"},
		{"ARROZ BASMATI", "Arroz basmati"},
	}
	for _, tt := range tests {
		if got := Parse(tt.input); got.Name != tt.want {
			t.Errorf("Parse(%q).Name = %q, want %q", tt.input, got.Name, tt.want)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	inputs := []string{
		"200 g pollo",
		"1/2 taza de arroz",
		"Sal al gusto",
		"",
		"   2   huevos  ",
	}
	for _, in := range inputs {
		first := Parse(in)
		second := Parse(in)
		if first != second {
			t.Errorf("Parse(%q) not deterministic: %+v vs %+v", in, first, second)
		}
	}
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{"", "   ", "1/0 taza arroz", "///", "42", "0,5"}
	for _, in := range inputs {
		got := Parse(in)
		if got.Quantity < 0 {
			t.Errorf("Parse(%q).Quantity = %v, want >= 0", in, got.Quantity)
		}
	}
}
