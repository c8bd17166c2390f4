package vars

import "testing"

func TestParseBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Yes":  true,
		"y":    true,
		"on":   true,
		"1":    true,
		"F":    false,
		"no":   false,
		"OFF":  false,
		"0":    false,
	} {
		v, err := ParseBool(str)
		if err != nil {
			t.Fatal(err)
		}
		if v != expected {
			t.Fatalf("%s: expected %v", str, expected)
		}
	}

	if _, err := ParseBool("maybe"); err == nil {
		t.Fatal("should error")
	}
}
