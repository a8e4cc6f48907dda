package embeddata

import (
	"bytes"
	"testing"
)

func TestReadAboutMD(t *testing.T) {
	data, err := ReadAboutMD()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("# Snake")) {
		t.Errorf("about.md starts with %q", data[:min(len(data), 20)])
	}
}

func TestReadTips(t *testing.T) {
	tips, err := ReadTips()
	if err != nil {
		t.Fatal(err)
	}
	if len(tips) == 0 {
		t.Fatal("no tips")
	}
	for i, tip := range tips {
		if tip == "" {
			t.Errorf("tip %d is empty", i)
		}
	}
}
