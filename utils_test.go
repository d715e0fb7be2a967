package datatable

import (
	"reflect"
	"testing"
)

func TestSpacePascalCase(t *testing.T) {
	tests := []struct {
		testName string
		name     string
		want     string
	}{
		{testName: "", name: "", want: ""},
		{testName: "HelloWorld", name: "HelloWorld", want: "Hello World"},
		{testName: "_Hello_World", name: "_Hello_World", want: "Hello World"},
		{testName: "helloWorld", name: "helloWorld", want: "hello World"},
		{testName: "helloWorld_", name: "helloWorld_", want: "hello World"},
		{testName: "ThisHasMoreSpacesForSure", name: "ThisHasMoreSpacesForSure", want: "This Has More Spaces For Sure"},
		{testName: "ThisHasMore_Spaces__ForSure", name: "ThisHasMore_Spaces__ForSure", want: "This Has More Spaces For Sure"},
		{testName: "CompanyID", name: "CompanyID", want: "Company ID"},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			if got := SpacePascalCase(tt.name); got != tt.want {
				t.Errorf("SpacePascalCase() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueIsNil(t *testing.T) {
	var nilMap map[string]int
	tests := []struct {
		name string
		val  reflect.Value
		want bool
	}{
		{name: "invalid", val: reflect.Value{}, want: true},
		{name: "nil map", val: reflect.ValueOf(nilMap), want: true},
		{name: "empty struct", val: reflect.ValueOf(struct{}{}), want: true},
		{name: "int", val: reflect.ValueOf(0), want: false},
		{name: "empty string", val: reflect.ValueOf(""), want: false},
		{name: "pointer", val: reflect.ValueOf(new(int)), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueIsNil(tt.val); got != tt.want {
				t.Errorf("ValueIsNil() = %v, want %v", got, tt.want)
			}
		})
	}
}
