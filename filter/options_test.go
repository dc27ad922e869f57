package filter

import "testing"

func TestOptionsZeroDisablesBounds(t *testing.T) {
	long := "(cn=" + string(make([]byte, 1<<17)) + ")"
	if _, err := DecodeWithOptions(long, Options{}); err != nil {
		t.Errorf("MaxLength=0 should disable the length bound, got: %v", err)
	}

	nested := "(cn=a)"
	for i := 0; i < 200; i++ {
		nested = "(&" + nested + ")"
	}
	if _, err := DecodeWithOptions(nested, Options{}); err != nil {
		t.Errorf("MaxDepth=0 should disable the depth bound, got: %v", err)
	}
}

func TestOptionsMaxLengthBoundary(t *testing.T) {
	s := "(cn=a)"
	if _, err := DecodeWithOptions(s, Options{MaxLength: len(s)}); err != nil {
		t.Errorf("input at exactly MaxLength should decode, got: %v", err)
	}
	if _, err := DecodeWithOptions(s, Options{MaxLength: len(s) - 1}); err == nil {
		t.Error("input one byte over MaxLength should fail")
	}
}
