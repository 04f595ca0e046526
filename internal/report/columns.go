// Package report builds the IP range utilisation workbook from the ranges of an address space.
package report

// Keys of a range record as returned by the web service.
const (
	KeyCustomProperties      = "customProperties"
	KeyName                  = "name"
	KeyFrom                  = "from"
	KeyTo                    = "to"
	KeySubnet                = "subnet"
	KeyIsContainer           = "isContainer"
	KeyUtilizationPercentage = "utilizationPercentage"

	// Nested under customProperties.
	KeyTitle       = "Title"
	KeyDescription = "Description"
	KeySiteCode    = "Site Code"
)

// Column headers of the report, in output order.
const (
	ColName                  = "name"
	ColTitle                 = "Title"
	ColSiteCode              = "SiteCode"
	ColDescription           = "Description"
	ColUtilizationPercentage = "utilizationPercentage"
	ColFrom                  = "from"
	ColTo                    = "to"
	ColSubnet                = "subnet"
	ColIsContainer           = "isContainer"
)

// Column maps a report header to where its value lives in a range record.
type Column struct {
	Header string
	Key    string
	Custom bool
}

// Columns is the fixed column order of the report.
var Columns = []Column{
	{Header: ColName, Key: KeyName},
	{Header: ColTitle, Key: KeyTitle, Custom: true},
	{Header: ColSiteCode, Key: KeySiteCode, Custom: true},
	{Header: ColDescription, Key: KeyDescription, Custom: true},
	{Header: ColUtilizationPercentage, Key: KeyUtilizationPercentage},
	{Header: ColFrom, Key: KeyFrom},
	{Header: ColTo, Key: KeyTo},
	{Header: ColSubnet, Key: KeySubnet},
	{Header: ColIsContainer, Key: KeyIsContainer},
}

// Headers returns the column headers in output order.
func Headers() []string {
	headers := make([]string, len(Columns))
	for i, c := range Columns {
		headers[i] = c.Header
	}
	return headers
}
