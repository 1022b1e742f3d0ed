package main

import (
	"reflect"
	"testing"

	apperrors "github.com/kbukum/fetchkit/errors"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"id=5", "q=a=b", "tags:=[\"x\",\"y\"]", "empty="})
	if err != nil {
		t.Fatal(err)
	}
	if got := params.Keys(); !reflect.DeepEqual(got, []string{"id", "q", "tags", "empty"}) {
		t.Errorf("flag order not kept: %v", got)
	}
	if v, _ := params.Get("id"); v != "5" {
		t.Errorf("plain params stay strings, got %#v", v)
	}
	if v, _ := params.Get("q"); v != "a=b" {
		t.Errorf("only the first = splits, got %#v", v)
	}
	if v, _ := params.Get("tags"); !reflect.DeepEqual(v, []any{"x", "y"}) {
		t.Errorf("json param not decoded, got %#v", v)
	}
}

func TestParseParams_None(t *testing.T) {
	params, err := parseParams(nil)
	if err != nil || params != nil {
		t.Errorf("expected nil params, got %v, %v", params, err)
	}
}

func TestParseParams_Errors(t *testing.T) {
	for _, arg := range []string{"novalue", "=x", ":=1", "bad:={"} {
		if _, err := parseParams([]string{arg}); err == nil {
			t.Errorf("expected error for %q", arg)
		}
	}
}

func TestParseCredential(t *testing.T) {
	cred, err := parseCredential("Authorization:  Bearer abc ")
	if err != nil {
		t.Fatal(err)
	}
	if cred.HeaderName != "Authorization" || cred.HeaderValue != "Bearer abc" {
		t.Errorf("unexpected credential %+v", cred)
	}

	if cred, err := parseCredential(""); cred != nil || err != nil {
		t.Errorf("empty credential should be nil, got %v, %v", cred, err)
	}
	if _, err := parseCredential("no separator"); !apperrors.HasCode(err, apperrors.ErrCodeInvalidFormat) {
		t.Errorf("expected INVALID_FORMAT without a colon, got %v", err)
	}
	if _, err := parseCredential("Bad Name: v"); err == nil {
		t.Error("expected error for an invalid header name")
	}
}
