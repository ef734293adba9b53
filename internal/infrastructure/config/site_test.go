package config

import (
	"testing"

	"parceiros_internet/internal/domain/quiz"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	if err := s.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if len(s.Cities) != 2 {
		t.Fatalf("expected 2 coverage cities, got %d", len(s.Cities))
	}
	if len(s.Quiz) != 4 {
		t.Fatalf("expected 4 quiz questions, got %d", len(s.Quiz))
	}
	if s.Contact.WhatsApp == "" {
		t.Fatal("expected a default whatsapp number")
	}
}

func TestSite_CityByName(t *testing.T) {
	s := Defaults()
	city, ok := s.CityByName("Camboriú")
	if !ok || city.ID != CityCamboriu {
		t.Fatalf("unexpected lookup result: %+v ok=%v", city, ok)
	}
	if _, ok := s.CityByName("Itajaí"); ok {
		t.Fatal("expected miss for city outside coverage")
	}
}

func TestSite_Validate(t *testing.T) {
	base := func() Site {
		return Site{
			Contact: Contact{WhatsApp: "5547999999999"},
			Cities: []City{
				{ID: CityCamboriu, Name: "Camboriú", Neighborhoods: []string{"Centro"}},
			},
			Quiz: []quiz.Question{{ID: "usage", Options: []quiz.Option{{Value: 1, Points: 1}}}},
		}
	}

	t.Run("valid", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing whatsapp", func(t *testing.T) {
		s := base()
		s.Contact.WhatsApp = ""
		if err := s.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("no cities", func(t *testing.T) {
		s := base()
		s.Cities = nil
		if err := s.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("duplicate city id", func(t *testing.T) {
		s := base()
		s.Cities = append(s.Cities, City{ID: CityCamboriu, Name: "Camboriú 2", Neighborhoods: []string{"Centro"}})
		if err := s.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("city without neighborhoods", func(t *testing.T) {
		s := base()
		s.Cities[0].Neighborhoods = nil
		if err := s.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("quiz question without options", func(t *testing.T) {
		s := base()
		s.Quiz = []quiz.Question{{ID: "usage"}}
		if err := s.Validate(); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONTACT_WHATSAPP", "5511888887777")
	t.Setenv("CONTACT_PHONE", "(11) 4000-1000")

	s, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Contact.WhatsApp != "5511888887777" {
		t.Fatalf("expected whatsapp override, got %q", s.Contact.WhatsApp)
	}
	if s.Contact.Phone != "(11) 4000-1000" {
		t.Fatalf("expected phone override, got %q", s.Contact.Phone)
	}
	// Untouched fields keep their defaults.
	if s.Contact.Email == "" {
		t.Fatal("expected default email")
	}
}
