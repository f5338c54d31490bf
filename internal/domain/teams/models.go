package teams

import "strings"

// Team is a league team as identified by the upstream API.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ShortName is the last whitespace-delimited token of the full name ("Boston Bruins" -> "Bruins").
func (t Team) ShortName() string {
	fields := strings.Fields(t.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
