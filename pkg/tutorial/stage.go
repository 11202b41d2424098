package tutorial

// Stage is a state of a single pipeline run
type Stage int

const (
	Start Stage = iota
	Parsed
	ListingFetched
	ReadmeResolved
	PromptBuilt
	Generated
	Done
	Failed
)

func (s Stage) String() string {
	switch s {
	case Start:
		return "Start"
	case Parsed:
		return "Parsed"
	case ListingFetched:
		return "ListingFetched"
	case ReadmeResolved:
		return "ReadmeResolved"
	case PromptBuilt:
		return "PromptBuilt"
	case Generated:
		return "Generated"
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// op names the step that leads into s
func (s Stage) op() string {
	switch s {
	case Parsed:
		return "parse url"
	case ListingFetched:
		return "fetch listing"
	case ReadmeResolved:
		return "resolve readme"
	case PromptBuilt:
		return "build prompt"
	case Generated:
		return "generate"
	default:
		return s.String()
	}
}
