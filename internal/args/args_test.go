package args

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []Entry
	}{
		{
			name:  "key value",
			input: []string{"c=data;out.h"},
			want:  []Entry{{Key: "c", Value: "data;out.h"}},
		},
		{
			name:  "bare token",
			input: []string{"public"},
			want:  []Entry{{Key: "public"}},
		},
		{
			name:  "quotes and spaces",
			input: []string{` cpp = "ns:var;out dir/a.h" `},
			want:  []Entry{{Key: "cpp", Value: "ns:var;out dir/a.h"}},
		},
		{
			name:  "split at first equals",
			input: []string{"python=a=b"},
			want:  []Entry{{Key: "python", Value: "a=b"}},
		},
		{
			name:  "empty value",
			input: []string{"java="},
			want:  []Entry{{Key: "java"}},
		},
		{
			name:  "duplicates kept",
			input: []string{"c=a", "c=b", "input.bin"},
			want:  []Entry{{Key: "c", Value: "a"}, {Key: "c", Value: "b"}, {Key: "input.bin"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Parse(tt.input)
			if a.Len() != len(tt.want) {
				t.Fatalf("Len() = %d, want %d", a.Len(), len(tt.want))
			}
			for i, w := range tt.want {
				if got := a.At(i); got != w {
					t.Errorf("At(%d) = %+v, want %+v", i, got, w)
				}
			}
		})
	}
}

func TestGetReturnsFirstMatch(t *testing.T) {
	a := Parse([]string{"c=first", "c=second", "public"})

	if got := a.Get("c"); got != "first" {
		t.Errorf("Get(c) = %q, want %q", got, "first")
	}
	if !a.Has("public") {
		t.Error("Has(public) = false, want true")
	}
	if a.Has("java") {
		t.Error("Has(java) = true, want false")
	}
	if got := a.Get("java"); got != "" {
		t.Errorf("Get(java) = %q, want empty", got)
	}
}

func TestLast(t *testing.T) {
	if _, ok := Parse(nil).Last(); ok {
		t.Error("Last() on empty arguments reported ok")
	}

	last, ok := Parse([]string{"c=x;y.h", "file.bin"}).Last()
	if !ok || last.Key != "file.bin" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestMerge(t *testing.T) {
	cli := Parse([]string{"c=cli;a.h"})
	cfg := New(Entry{Key: "c", Value: "cfg;b.h"}, Entry{Key: "java", Value: "J;J.java"})

	merged := cli.Merge(cfg)
	if got := merged.Get("c"); got != "cli;a.h" {
		t.Errorf("Get(c) = %q, want command line value", got)
	}
	if got := merged.Get("java"); got != "J;J.java" {
		t.Errorf("Get(java) = %q, want config value", got)
	}
	if cli.Len() != 1 {
		t.Errorf("Merge modified receiver: Len() = %d", cli.Len())
	}
}
