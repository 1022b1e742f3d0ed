package fetch

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

type level int

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type meta struct {
	Source string `json:"source"`
}

type filter struct {
	meta
	Name    string    `json:"name"`
	Tags    []string  `json:"tags,omitempty"`
	Limit   int       `json:"limit,omitempty"`
	Secret  string    `json:"-"`
	Origin  *point    `json:"origin,omitempty"`
	Since   time.Time `json:"since"`
	Verbose bool
	private int
}

func TestEncodeQuery(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 30, 0, 5_000_000, time.FixedZone("X", 3600))
	tests := []struct {
		name   string
		params *Params
		want   string
	}{
		{"single", NewParams("id", 5), "id=5"},
		{"insertion order", NewParams("b", 1, "a", 2), "b=1&a=2"},
		{"space and reserved", NewParams("q", "a b&c=d/e"), "q=a%20b%26c%3Dd%2Fe"},
		{"unreserved kept", NewParams("k", "A-z_0.9~"), "k=A-z_0.9~"},
		{"utf8", NewParams("name", "çé"), "name=%C3%A7%C3%A9"},
		{"nil value", NewParams("x", nil), "x="},
		{"bools", NewParams("t", true, "f", false), "t=true&f=false"},
		{"floats", NewParams("a", 1.5, "b", 2.0, "c", 1e21, "d", 1.5e-7), "a=1.5&b=2&c=1e%2B21&d=1.5e-7"},
		{"named int", NewParams("lvl", level(3)), "lvl=3"},
		{"time", NewParams("at", ts), "at=2024-03-01T11%3A30%3A00.005Z"},
		{"array", NewParams("a", []string{"x", "y"}), "a%5B0%5D=x&a%5B1%5D=y"},
		{"nested params", NewParams("a", NewParams("b", "c", "d", 1)), "a%5Bb%5D=c&a%5Bd%5D=1"},
		{"nested map sorted", NewParams("m", map[string]any{"z": 1, "a": 2}), "m%5Ba%5D=2&m%5Bz%5D=1"},
		{"deep", NewParams("a", []any{NewParams("b", []int{1})}), "a%5B0%5D%5Bb%5D%5B0%5D=1"},
		{"empty collections", NewParams("e", []int{}, "m", map[string]int{}, "p", NewParams(), "k", 1), "k=1"},
		{"nil pointer", NewParams("p", (*int)(nil)), "p="},
		{"pointer", NewParams("p", func() *int { v := 7; return &v }()), "p=7"},
		{"struct", NewParams("p", point{1, 2}), "p%5Bx%5D=1&p%5By%5D=2"},
		{"struct pointer", NewParams("p", &point{3, 4}), "p%5Bx%5D=3&p%5By%5D=4"},
		{"struct fields", NewParams("f", filter{
			meta:    meta{Source: "cli"},
			Name:    "a",
			Secret:  "s",
			Since:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Verbose: true,
			private: 1,
		}), "f%5Bsource%5D=cli&f%5Bname%5D=a&f%5Bsince%5D=2024-01-02T03%3A04%3A05.000Z&f%5BVerbose%5D=true"},
		{"struct in array", NewParams("ps", []point{{1, 2}}), "ps%5B0%5D%5Bx%5D=1&ps%5B0%5D%5By%5D=2"},
		{"empty", NewParams(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeQuery(tt.params); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeQuery_StructMatchesJSONBody(t *testing.T) {
	params := NewParams("p", point{1, 2})
	body, err := json.Marshal(params)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"p":{"x":1,"y":2}}` {
		t.Fatalf("unexpected body %s", body)
	}
	if got := BuildAddress("/items", params); got != "/items?p%5Bx%5D=1&p%5By%5D=2" {
		t.Errorf("query form should walk the same keys as the body, got %q", got)
	}
}

func TestBuildAddress_Idempotent(t *testing.T) {
	params := NewParams("id", 5, "tags", []string{"a", "b"}, "p", point{1, 2})
	first := BuildAddress("/items?x=1", params)
	second := BuildAddress("/items?x=1", params)
	if first != second {
		t.Errorf("BuildAddress not idempotent: %q then %q", first, second)
	}
	if params.Len() != 3 {
		t.Errorf("params changed by encoding: %v", params.Keys())
	}
}

func TestFormatFloat_Special(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.Copysign(0, -1), "0"},
		{-0.25, "-0.25"},
		{123456789, "123456789"},
	}
	for _, tt := range tests {
		if got := formatFloat(tt.in, 64); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		params  *Params
		want    string
	}{
		{"nil params", "/items", nil, "/items"},
		{"empty params", "/items", NewParams(), "/items"},
		{"only empty values", "/items", NewParams("a", []int{}), "/items"},
		{"append", "/items", NewParams("id", 5), "/items?id=5"},
		{"existing query", "/items?x=1", NewParams("id", 5), "/items?x=1&id=5"},
		{"trailing question mark", "/items?", NewParams("id", 5), "/items?id=5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAddress(tt.address, tt.params)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if again := BuildAddress(tt.address, tt.params); again != got {
				t.Errorf("not deterministic: %q vs %q", got, again)
			}
		})
	}
}
