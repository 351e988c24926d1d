package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{input: "admin", want: RoleAdmin},
		{input: "manager", want: RoleManager},
		{input: "employee", want: RoleEmployee},
		{input: "ceo", wantErr: true},
		{input: "Admin", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRole(%q) should fail", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
