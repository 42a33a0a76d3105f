// Package catalog declares the admin screens the tool ships with. Each
// screen is the same list parameterised by its columns, its candidate
// pool and its starting rows.
package catalog

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/listadmin/internal/model"
	"github.com/idilsaglam/listadmin/internal/orderlist"
)

// Seed is a starting row.
type Seed struct {
	Name  string
	Attrs model.AttrSet
}

// Group is a labelled run of adjacent columns ("CFDs", "Futures").
type Group struct {
	Label string
	Attrs []model.Attr
}

// Screen describes one admin list.
type Screen struct {
	Key      string
	Title    string
	Noun     string // singular row noun for prompts ("country", "method")
	Groups   []Group
	Schema   model.Schema
	Pool     []string
	Defaults model.AttrSet
	Seeds    []Seed

	// Restricts marks screens where a switched-on cell blocks the product
	// rather than offering it.
	Restricts bool
}

// HasPool reports whether additions are picked from a fixed pool rather
// than typed.
func (s Screen) HasPool() bool { return len(s.Pool) > 0 }

// GroupOf returns the label of the group holding a, or "".
func (s Screen) GroupOf(a model.Attr) string {
	for _, g := range s.Groups {
		for _, x := range g.Attrs {
			if x == a {
				return g.Label
			}
		}
	}
	return ""
}

// Mount builds a fresh list for the screen. Seeds that fail to add
// (duplicates in the declaration) are reported, not fatal.
func (s Screen) Mount(ids orderlist.IDGenerator) (*orderlist.List, error) {
	l := orderlist.New(s.Schema, s.Pool, ids, orderlist.WithDefaults(s.Defaults))
	var bad []string
	for _, sd := range s.Seeds {
		if _, err := l.AddItemWith(sd.Name, sd.Attrs); err != nil {
			bad = append(bad, sd.Name)
		}
	}
	if len(bad) > 0 {
		return l, fmt.Errorf("screen %s: skipped seeds %s", s.Key, strings.Join(bad, ", "))
	}
	return l, nil
}

var (
	cfds         = Group{Label: "CFDs", Attrs: []model.Attr{model.AttrMT4, model.AttrMT5, model.AttrCTrader}}
	cfdBrokers   = Group{Label: "CFDs", Attrs: []model.Attr{model.AttrOrbex, model.AttrGBE, model.AttrTickmill}}
	futures      = Group{Label: "Futures", Attrs: []model.Attr{model.AttrDXFeed, model.AttrRithmic, model.AttrTradovate}}
	stocks       = Group{Label: "Stocks", Attrs: []model.Attr{model.AttrStocks}}
	productCols  = columns(cfds, futures)
	brokerCols   = columns(cfdBrokers, futures, stocks)
	allProducts  = model.SetOf(productCols...)
	allBrokers   = model.SetOf(brokerCols...)
	brokerSeeded = model.SetOf(model.AttrTickmill, model.AttrDXFeed, model.AttrRithmic, model.AttrTradovate, model.AttrStocks)
)

var screens = []Screen{
	{
		Key:       "blocked-countries",
		Title:     "Blocked Countries",
		Noun:      "country",
		Groups:    []Group{cfds, futures},
		Schema:    productCols,
		Pool:      BlockedCountries,
		Restricts: true,
		Seeds: []Seed{
			{Name: "Afghanistan", Attrs: model.SetOf(model.AttrRithmic)},
			{Name: "Belarus", Attrs: model.SetOf(model.AttrDXFeed)},
			{Name: "Bonaire", Attrs: model.SetOf(model.AttrRithmic)},
			{Name: "Canada", Attrs: model.SetOf(model.AttrMT4, model.AttrMT5, model.AttrCTrader)},
		},
	},
	{
		Key:      "payment-methods",
		Title:    "Payment Methods",
		Noun:     "method",
		Schema:   model.Schema{model.AttrActive},
		Defaults: model.SetOf(model.AttrActive),
		Seeds: []Seed{
			{Name: "Credit Card (Visa/Mastercard)", Attrs: model.SetOf(model.AttrActive)},
			{Name: "PayPal", Attrs: model.SetOf(model.AttrActive)},
			{Name: "Apple Pay"},
			{Name: "Google Pay", Attrs: model.SetOf(model.AttrActive)},
			{Name: "Bank Transfer", Attrs: model.SetOf(model.AttrActive)},
			{Name: "Cryptocurrency (Bitcoin)"},
			{Name: "Stripe", Attrs: model.SetOf(model.AttrActive)},
			{Name: "Amazon Pay"},
			{Name: "WeChat Pay", Attrs: model.SetOf(model.AttrActive)},
			{Name: "Alipay", Attrs: model.SetOf(model.AttrActive)},
		},
	},
	{
		Key:      "technology-platforms",
		Title:    "Technology Platform",
		Noun:     "country",
		Groups:   []Group{cfds, futures},
		Schema:   productCols,
		Pool:     PlatformCountries,
		Defaults: allProducts,
		Seeds: []Seed{
			{Name: "Afghanistan", Attrs: allProducts.Flip(model.AttrRithmic)},
			{Name: "Belarus", Attrs: allProducts.Flip(model.AttrDXFeed)},
			{Name: "Bonaire", Attrs: allProducts.Flip(model.AttrRithmic)},
			{Name: "Canada", Attrs: model.SetOf(model.AttrDXFeed, model.AttrRithmic, model.AttrTradovate)},
		},
	},
	{
		Key:      "technology-brokers",
		Title:    "Technology Broker",
		Noun:     "country",
		Groups:   []Group{cfdBrokers, futures, stocks},
		Schema:   brokerCols,
		Pool:     BrokerCountries,
		Defaults: allBrokers,
		Seeds: []Seed{
			{Name: "Algeria", Attrs: brokerSeeded},
			{Name: "Argentina", Attrs: brokerSeeded},
			{Name: "Austria", Attrs: brokerSeeded},
			{Name: "Bahrain", Attrs: brokerSeeded},
			{Name: "Bolivia", Attrs: brokerSeeded},
			{Name: "Brazil", Attrs: brokerSeeded},
		},
	},
}

func columns(groups ...Group) model.Schema {
	var out model.Schema
	for _, g := range groups {
		out = append(out, g.Attrs...)
	}
	return out
}

// All returns every screen in tab order.
func All() []Screen { return append([]Screen(nil), screens...) }

// Keys returns the screen keys in tab order.
func Keys() []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = s.Key
	}
	return out
}

// Lookup finds a screen by key.
func Lookup(key string) (Screen, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, s := range screens {
		if s.Key == key {
			return s, true
		}
	}
	return Screen{}, false
}
