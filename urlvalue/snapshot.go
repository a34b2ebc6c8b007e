package urlvalue

import "encoding/json"

// Components is a read-only snapshot of a URL, shaped for JSON output.
// Absent labels and ports are nil.
type Components struct {
	Secure    bool     `json:"secure"`
	Protocol  string   `json:"protocol"`
	SubDomain string   `json:"subDomain"`
	Name      *string  `json:"name"`
	Domain    *string  `json:"domain"`
	HostName  string   `json:"hostName"`
	Path      []string `json:"path"`
	Port      *int     `json:"port"`
	URL       string   `json:"url"`
	FullURL   string   `json:"fullUrl"`
}

// Snapshot returns the current components of u.
func (u *URL) Snapshot() Components {
	c := u.Clone()
	return Components{
		Secure:    c.secure,
		Protocol:  c.Protocol(),
		SubDomain: c.subDomain,
		Name:      c.name,
		Domain:    c.domain,
		HostName:  c.HostName(),
		Path:      c.Path(),
		Port:      c.port,
		URL:       c.String(),
		FullURL:   c.FullURL(),
	}
}

// MarshalJSON encodes the snapshot of u.
func (u *URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Snapshot())
}
