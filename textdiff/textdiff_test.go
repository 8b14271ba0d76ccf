package textdiff

import "testing"

func TestUnified(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want string
	}{
		{
			name: "equal",
			from: "a\nb\n",
			to:   "a\nb\n",
			want: "",
		},
		{
			name: "replace line",
			from: "a\nb\nc\n",
			to:   "a\nx\nc\n",
			want: " a\n-b\n+x\n c\n",
		},
		{
			name: "append line",
			from: "a\n",
			to:   "a\nb\n",
			want: " a\n+b\n",
		},
		{
			name: "delete line",
			from: "a\nb\n",
			to:   "a\n",
			want: " a\n-b\n",
		},
		{
			name: "from empty",
			from: "",
			to:   "n 1\n",
			want: "+n 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unified(tt.from, tt.to); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
