package model

import "testing"

func TestCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"whole", 25, 2500},
		{"fraction", 12.5, 1250},
		{"two decimals", 9.99, 999},
		{"float artifact", 19.99, 1999},
		{"float artifact down", 29.98, 2998},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cents(tt.amount); got != tt.want {
				t.Errorf("Cents(%v) = %d, want %d", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  float64
	}{
		{"whole", 2500, 25},
		{"fraction", 1250, 12.5},
		{"one cent", 1, 0.01},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Amount(tt.cents); got != tt.want {
				t.Errorf("Amount(%d) = %v, want %v", tt.cents, got, tt.want)
			}
		})
	}
}

func TestRoles(t *testing.T) {
	u := User{
		IsStaff:     true,
		IsActive:    true,
		IsSuperuser: true,
		Groups:      []Group{GroupManager, GroupCustomer},
	}

	r := u.Roles()
	if !r.Manager || !r.Customer || r.Delivery {
		t.Fatalf("unexpected roles: %+v", r)
	}
	if !r.Staff || !r.Active || !r.Superuser {
		t.Fatalf("flags not carried: %+v", r)
	}
}

func TestKnownGroup(t *testing.T) {
	for _, g := range []Group{GroupManager, GroupDelivery, GroupCustomer} {
		if !KnownGroup(g) {
			t.Errorf("KnownGroup(%q) = false, want true", g)
		}
	}
	if KnownGroup("admins") {
		t.Errorf("KnownGroup(admins) = true, want false")
	}
}
