package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veristay/internal/app"
)

const validHostel = `{
	"name": " Test Hostel ",
	"address": "123 Test St",
	"price_min": 5000,
	"price_max": 8000,
	"lat": 23.0,
	"long": 72.0,
	"amenities": ["WiFi", "AC", "WiFi"],
	"images": ["http://example.com/image.jpg"],
	"is_verified": true
}`

func TestValidateHostelCreate_Valid(t *testing.T) {
	in, err := app.ValidateHostelCreate(body(t, validHostel))

	require.NoError(t, err)
	assert.Equal(t, "Test Hostel", in.Name)
	assert.Equal(t, "123 Test St", in.Address)
	assert.Equal(t, int64(5000), in.PriceMin)
	assert.Equal(t, int64(8000), in.PriceMax)
	assert.Equal(t, 23.0, in.Lat)
	assert.Equal(t, 72.0, in.Long)
	assert.Equal(t, []string{"WiFi", "AC", "WiFi"}, in.Amenities)
	assert.Equal(t, []string{"http://example.com/image.jpg"}, in.Images)
	assert.True(t, in.IsVerified)
}

func TestValidateHostelCreate_Defaults(t *testing.T) {
	in, err := app.ValidateHostelCreate(body(t, `{"name":"H","address":"A","price_min":0,"price_max":0,"lat":0,"long":0}`))

	require.NoError(t, err)
	assert.Equal(t, []string{}, in.Amenities)
	assert.Equal(t, []string{}, in.Images)
	assert.False(t, in.IsVerified)
}

func TestValidateHostelCreate_Coercion(t *testing.T) {
	in, err := app.ValidateHostelCreate(body(t, `{
		"name":"H","address":"A",
		"price_min":"1000","price_max":2500.9,
		"lat":"-45.5","long":180,
		"is_verified":"no"
	}`))

	require.NoError(t, err)
	assert.Equal(t, int64(1000), in.PriceMin)
	assert.Equal(t, int64(2500), in.PriceMax, "fractions truncate")
	assert.Equal(t, -45.5, in.Lat)
	assert.Equal(t, 180.0, in.Long)
	assert.True(t, in.IsVerified, "non-empty strings are truthy")
}

func TestValidateHostelCreate_IsVerifiedTruthiness(t *testing.T) {
	cases := map[string]bool{
		`0`: false, `1`: true, `""`: false, `"x"`: true,
		`[]`: false, `["a"]`: true, `{}`: false, `null`: false, `false`: false,
	}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			in, err := app.ValidateHostelCreate(body(t,
				`{"name":"H","address":"A","price_min":1,"price_max":2,"lat":1,"long":1,"is_verified":`+raw+`}`))
			require.NoError(t, err)
			assert.Equal(t, want, in.IsVerified)
		})
	}
}

func TestValidateHostelCreate_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"not object", `"hostel"`, "Request body must be a JSON object"},
		{"only name", `{"name":"Incomplete"}`, "Missing required field: address"},
		{"nothing", `{}`, "Missing required field: name"},
		{"null lat", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":null,"long":1}`, "Missing required field: lat"},
		{"blank name", `{"name":"  ","address":"A","price_min":1,"price_max":2,"lat":1,"long":1}`, "Name cannot be empty"},
		{"number address", `{"name":"H","address":7,"price_min":1,"price_max":2,"lat":1,"long":1}`, "Address must be a string"},
		{"price text", `{"name":"H","address":"A","price_min":"cheap","price_max":2,"lat":1,"long":1}`, "Prices must be integers"},
		{"price bool", `{"name":"H","address":"A","price_min":true,"price_max":2,"lat":1,"long":1}`, "Prices must be integers"},
		{"negative price", `{"name":"H","address":"A","price_min":-1,"price_max":2,"lat":1,"long":1}`, "Prices must be non-negative"},
		{"inverted prices", `{"name":"H","address":"A","price_min":10000,"price_max":5000,"lat":1,"long":1}`, "price_min cannot be greater than price_max"},
		{"lat range", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":90.1,"long":1}`, "Invalid coordinates"},
		{"long range", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":1,"long":-180.5}`, "Invalid coordinates"},
		{"lat text", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":"north","long":1}`, "Invalid coordinates"},
		{"lat nan", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":"NaN","long":1}`, "Invalid coordinates"},
		{"amenities not list", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":1,"long":1,"amenities":"WiFi"}`, "Amenities must be a list of strings"},
		{"images mixed", `{"name":"H","address":"A","price_min":1,"price_max":2,"lat":1,"long":1,"images":["a",2]}`, "Images must be a list of strings"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.ValidateHostelCreate(body(t, tc.src))
			requireInvalid(t, err, tc.msg)
		})
	}
}

func TestValidateHostelUpdate_IgnoresUnknownFields(t *testing.T) {
	p, err := app.ValidateHostelUpdate(body(t, `{"name":"x","extra":1}`))

	require.NoError(t, err)
	require.NotNil(t, p.Name)
	assert.Equal(t, "x", *p.Name)
	assert.Nil(t, p.Address)
	assert.Nil(t, p.PriceMin)
	assert.Nil(t, p.Amenities)
	assert.Nil(t, p.IsVerified)
}

func TestValidateHostelUpdate_InvertedPricesAccepted(t *testing.T) {
	p, err := app.ValidateHostelUpdate(body(t, `{"price_min":10000,"price_max":5000}`))

	require.NoError(t, err)
	assert.Equal(t, int64(10000), *p.PriceMin)
	assert.Equal(t, int64(5000), *p.PriceMax)
}

func TestValidateHostelUpdate_AllFields(t *testing.T) {
	p, err := app.ValidateHostelUpdate(body(t, `{
		"name":"N","address":"A","price_min":1,"price_max":2,"lat":-90,"long":-180,
		"amenities":null,"images":["i"],"is_verified":0
	}`))

	require.NoError(t, err)
	assert.Equal(t, "N", *p.Name)
	assert.Equal(t, "A", *p.Address)
	assert.Equal(t, -90.0, *p.Lat)
	assert.Equal(t, -180.0, *p.Long)
	assert.Equal(t, []string{}, *p.Amenities)
	assert.Equal(t, []string{"i"}, *p.Images)
	assert.False(t, *p.IsVerified)
}

func TestValidateHostelUpdate_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"not object", `[]`, "Request body must be a JSON object"},
		{"empty", `{}`, "At least one field must be provided for update"},
		{"negative price", `{"price_min":-100}`, "Prices must be non-negative"},
		{"null name", `{"name":null}`, "Name must be a string"},
		{"blank address", `{"address":" "}`, "Address cannot be empty"},
		{"bad long", `{"long":200}`, "Invalid coordinates"},
		{"bad images", `{"images":{"a":1}}`, "Images must be a list of strings"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := app.ValidateHostelUpdate(body(t, tc.src))
			requireInvalid(t, err, tc.msg)
		})
	}
}

func TestValidateHostelUpdate_OnlyUnknownFields(t *testing.T) {
	p, err := app.ValidateHostelUpdate(body(t, `{"extra":1}`))

	require.NoError(t, err)
	assert.Nil(t, p.Name)
}
