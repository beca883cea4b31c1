package domain

// Profile is the read-only user profile shown on the profile screen.
type Profile struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Username string  `json:"username" yaml:"username"`
	Email    string  `json:"email" yaml:"email"`
	Address  Address `json:"address" yaml:"address"`
	Phone    string  `json:"phone" yaml:"phone"`
	Website  string  `json:"website" yaml:"website"`
	Company  Company `json:"company" yaml:"company"`
}

// Address is the postal address of a profile.
type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo"`
}

// Geo holds coordinates as published by the source (strings, not floats).
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

// Company describes the employer of a profile.
type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	BS          string `json:"bs" yaml:"businessSlogan"`
}

// Handle returns the username prefixed with @.
func (p Profile) Handle() string {
	if p.Username == "" {
		return ""
	}
	return "@" + p.Username
}

// WebsiteURL returns the website as an http URL, matching how the source publishes bare hosts.
func (p Profile) WebsiteURL() string {
	if p.Website == "" {
		return ""
	}
	return "http://" + p.Website
}
