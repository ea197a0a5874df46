package config

import "testing"

func TestListenAddrDefault(t *testing.T) {
	t.Setenv("CLACK_ADDR", "")
	if got := ListenAddr(); got != defaultAddr {
		t.Fatalf("ListenAddr = %q, want %q", got, defaultAddr)
	}
	t.Setenv("CLACK_ADDR", ":9999")
	if got := ListenAddr(); got != ":9999" {
		t.Fatalf("ListenAddr = %q, want %q", got, ":9999")
	}
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("CLACK_ORIGINS", "")
	if got := AllowedOrigins(); got != nil {
		t.Fatalf("AllowedOrigins with empty env = %v, want nil", got)
	}

	t.Setenv("CLACK_ORIGINS", "https://a.example, https://b.example ,")
	got := AllowedOrigins()
	want := []string{"https://a.example", "https://b.example"}
	if len(got) != len(want) {
		t.Fatalf("AllowedOrigins = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllowedOrigins[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
