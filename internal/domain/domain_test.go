package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestHero_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hero    Hero
		wantErr string
	}{
		{"valid", Hero{Name: "Kamala Khan", SuperName: "Ms. Marvel"}, ""},
		{"missing name", Hero{SuperName: "Ms. Marvel"}, "name"},
		{"missing super_name", Hero{Name: "Kamala Khan"}, "super_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hero.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantErr {
				t.Errorf("expected field %s, got %s", tt.wantErr, verr.Field)
			}
		})
	}
}

func TestPower_Validate(t *testing.T) {
	valid := Power{Name: "flight", Description: "gives the wielder the ability to fly"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	short := Power{Name: "flight", Description: "flies"}
	err := short.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if !strings.Contains(err.Error(), "at least 20 characters") {
		t.Errorf("unexpected message: %s", err.Error())
	}

	// Ровно 20 символов — допустимо, считаются руны, а не байты
	exact := Power{Name: "x", Description: strings.Repeat("ж", MinDescriptionLength)}
	if err := exact.Validate(); err != nil {
		t.Errorf("unexpected error for %d runes: %v", MinDescriptionLength, err)
	}

	noName := Power{Description: "gives the wielder the ability to fly"}
	if err := noName.Validate(); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestPower_BeforeSave(t *testing.T) {
	p := &Power{Name: "flight", Description: "short"}
	if err := p.BeforeSave(nil); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestHeroPower_Validate(t *testing.T) {
	hp := HeroPower{Strength: "Strong", HeroID: 1, PowerID: 2}
	if err := hp.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, bad := range []HeroPower{
		{HeroID: 1, PowerID: 2},
		{Strength: "Weak", PowerID: 2},
		{Strength: "Weak", HeroID: 1},
	} {
		if err := bad.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("expected ErrValidation for %+v, got %v", bad, err)
		}
	}
}

func TestTableNames(t *testing.T) {
	if (Hero{}).TableName() != "heroes" {
		t.Error("heroes table expected")
	}
	if (Power{}).TableName() != "powers" {
		t.Error("powers table expected")
	}
	if (HeroPower{}).TableName() != "hero_powers" {
		t.Error("hero_powers table expected")
	}
}
