package dnspod

// Record is a single DNS resource record as returned by Record.List.
// DNSPod serializes numeric fields (ttl, mx) as strings; they are kept
// as strings since the monitor only ever compares type and value.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Value   string `json:"value"`
	Line    string `json:"line,omitempty"`
	TTL     string `json:"ttl,omitempty"`
	MX      string `json:"mx,omitempty"`
	Status  string `json:"status,omitempty"`
	Enabled string `json:"enabled,omitempty"`
}

// apiStatus is the status envelope present in every DNSPod response.
// Code is "1" on success.
type apiStatus struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type recordListResponse struct {
	Status  apiStatus `json:"status"`
	Records []Record  `json:"records"`
}
