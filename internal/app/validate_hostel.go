package app

import (
	"strings"

	"veristay/internal/domain"
)

// hostelRequired is also the order in which missing fields are reported.
var hostelRequired = []string{"name", "address", "price_min", "price_max", "lat", "long"}

// ValidateHostelCreate checks a POST /api/hostels body.
func ValidateHostelCreate(input any) (domain.HostelInput, error) {
	data, err := asObject(input)
	if err != nil {
		return domain.HostelInput{}, err
	}
	for _, f := range hostelRequired {
		if v, ok := data[f]; !ok || v == nil {
			return domain.HostelInput{}, domain.Invalidf("Missing required field: %s", f)
		}
	}

	var in domain.HostelInput
	if in.Name, err = hostelText(data["name"], "Name"); err != nil {
		return domain.HostelInput{}, err
	}
	if in.Address, err = hostelText(data["address"], "Address"); err != nil {
		return domain.HostelInput{}, err
	}
	if in.PriceMin, err = hostelPrice(data["price_min"]); err != nil {
		return domain.HostelInput{}, err
	}
	if in.PriceMax, err = hostelPrice(data["price_max"]); err != nil {
		return domain.HostelInput{}, err
	}
	if in.PriceMin > in.PriceMax {
		return domain.HostelInput{}, domain.Invalid("price_min cannot be greater than price_max")
	}
	if in.Lat, err = coordinate(data["lat"], 90); err != nil {
		return domain.HostelInput{}, err
	}
	if in.Long, err = coordinate(data["long"], 180); err != nil {
		return domain.HostelInput{}, err
	}
	if in.Amenities, err = stringList(data["amenities"], "Amenities"); err != nil {
		return domain.HostelInput{}, err
	}
	if in.Images, err = stringList(data["images"], "Images"); err != nil {
		return domain.HostelInput{}, err
	}
	in.IsVerified = truthy(data["is_verified"])
	return in, nil
}

// ValidateHostelUpdate checks a PUT /api/hostels/{id} body. Every present
// field gets its create rule, except that price_min and price_max are not
// compared with each other. Unknown keys are ignored.
func ValidateHostelUpdate(input any) (domain.HostelPatch, error) {
	data, err := asObject(input)
	if err != nil {
		return domain.HostelPatch{}, err
	}
	if err := requireNonEmpty(data); err != nil {
		return domain.HostelPatch{}, err
	}

	var p domain.HostelPatch
	if v, ok := data["name"]; ok {
		s, err := hostelText(v, "Name")
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.Name = &s
	}
	if v, ok := data["address"]; ok {
		s, err := hostelText(v, "Address")
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.Address = &s
	}
	if v, ok := data["price_min"]; ok {
		n, err := hostelPrice(v)
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.PriceMin = &n
	}
	if v, ok := data["price_max"]; ok {
		n, err := hostelPrice(v)
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.PriceMax = &n
	}
	if v, ok := data["lat"]; ok {
		f, err := coordinate(v, 90)
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.Lat = &f
	}
	if v, ok := data["long"]; ok {
		f, err := coordinate(v, 180)
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.Long = &f
	}
	if v, ok := data["amenities"]; ok {
		l, err := stringList(v, "Amenities")
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.Amenities = &l
	}
	if v, ok := data["images"]; ok {
		l, err := stringList(v, "Images")
		if err != nil {
			return domain.HostelPatch{}, err
		}
		p.Images = &l
	}
	if v, ok := data["is_verified"]; ok {
		b := truthy(v)
		p.IsVerified = &b
	}
	return p, nil
}

func hostelText(v any, label string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", domain.Invalidf("%s must be a string", label)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.Invalidf("%s cannot be empty", label)
	}
	return s, nil
}

func hostelPrice(v any) (int64, error) {
	n, ok := toInt64(v)
	if !ok {
		return 0, domain.Invalid("Prices must be integers")
	}
	if n < 0 {
		return 0, domain.Invalid("Prices must be non-negative")
	}
	return n, nil
}

// coordinate accepts a number within [-limit, limit]. NaN fails the range check.
func coordinate(v any, limit float64) (float64, error) {
	f, ok := toFloat64(v)
	if !ok || !(f >= -limit && f <= limit) {
		return 0, domain.Invalid("Invalid coordinates")
	}
	return f, nil
}

func stringList(v any, label string) ([]string, error) {
	l, ok := toStrings(v)
	if !ok {
		return nil, domain.Invalidf("%s must be a list of strings", label)
	}
	return l, nil
}
