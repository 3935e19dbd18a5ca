package usecasees

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://www.ndtv.com/fuel-prices"

	allStatesPage = "diesel-price-in-all-state"
	cityPage      = "diesel-price-in-%s-city"
	statePage     = "diesel-price-in-%s-state"
)

// PageURLs builds upstream page addresses under one base URL.
type PageURLs struct {
	base *url.URL
}

func NewPageURLs(base string) (PageURLs, error) {
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return PageURLs{}, err
	}

	return PageURLs{base: u}, nil
}

func (p PageURLs) AllStates() *url.URL {
	return p.base.JoinPath(allStatesPage)
}

// City lowercases the name and joins its words with dashes.
func (p PageURLs) City(city string) *url.URL {
	slug := strings.ToLower(strings.ReplaceAll(city, " ", "-"))

	return p.base.JoinPath(fmt.Sprintf(cityPage, slug))
}

// State uses the name as given.
func (p PageURLs) State(state string) *url.URL {
	return p.base.JoinPath(fmt.Sprintf(statePage, state))
}
