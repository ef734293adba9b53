package entities

import "testing"

func TestPlan_IdealFor(t *testing.T) {
	cases := []struct {
		speed int
		want  string
	}{
		{200, "Ideal para 1-2 pessoas, navegação e redes sociais"},
		{400, "Ideal para famílias com streaming e smart home"},
		{600, "Ideal para gamers, home office e streaming 4K"},
		{1000, "Ideal para empresas em casa, streamers e tech lovers"},
	}
	for _, tc := range cases {
		p := Plan{Speed: tc.speed}
		if got := p.IdealFor(); got != tc.want {
			t.Errorf("IdealFor(speed=%d) = %q, want %q", tc.speed, got, tc.want)
		}
	}
}

func TestInstallationPeriod_Valid(t *testing.T) {
	for _, p := range []InstallationPeriod{InstallationManha, InstallationTarde, InstallationNoite} {
		if !p.Valid() {
			t.Errorf("expected %q to be valid", p)
		}
	}
	if InstallationPeriod("madrugada").Valid() {
		t.Error("expected unknown period to be invalid")
	}
	if InstallationPeriod("").Valid() {
		t.Error("expected empty period to be invalid")
	}
}
