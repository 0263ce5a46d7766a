// Package analyzer turns raw resume text into a structured
// CandidateProfile using dictionary lookups and year-pattern
// extraction. Analysis is best-effort and never fails: malformed or
// empty text produces a sparse profile, not an error.
package analyzer

// Config holds the dictionaries analysis matches against. Zero-value
// fields fall back to the built-in defaults, which are tuned for the
// Sierra Leone job market.
type Config struct {
	TechnicalSkills []string
	SoftSkills      []string
	Degrees         []string
	Institutions    []string
	Fields          []string
	Languages       []string
	Certifications  []string
	LocationHubs    []string
	Titles          []string
}

// DefaultConfig returns the built-in dictionaries.
func DefaultConfig() Config {
	return Config{
		TechnicalSkills: defaultTechnicalSkills,
		SoftSkills:      defaultSoftSkills,
		Degrees:         defaultDegrees,
		Institutions:    defaultInstitutions,
		Fields:          defaultFields,
		Languages:       defaultLanguages,
		Certifications:  defaultCertifications,
		LocationHubs:    defaultLocationHubs,
		Titles:          defaultTitles,
	}
}

// merged returns cfg with every empty field replaced by its default.
func (c Config) merged() Config {
	def := DefaultConfig()
	if len(c.TechnicalSkills) == 0 {
		c.TechnicalSkills = def.TechnicalSkills
	}
	if len(c.SoftSkills) == 0 {
		c.SoftSkills = def.SoftSkills
	}
	if len(c.Degrees) == 0 {
		c.Degrees = def.Degrees
	}
	if len(c.Institutions) == 0 {
		c.Institutions = def.Institutions
	}
	if len(c.Fields) == 0 {
		c.Fields = def.Fields
	}
	if len(c.Languages) == 0 {
		c.Languages = def.Languages
	}
	if len(c.Certifications) == 0 {
		c.Certifications = def.Certifications
	}
	if len(c.LocationHubs) == 0 {
		c.LocationHubs = def.LocationHubs
	}
	if len(c.Titles) == 0 {
		c.Titles = def.Titles
	}
	return c
}

var defaultTechnicalSkills = []string{
	// Software and data
	"javascript", "typescript", "python", "java", "c++", "c#", "php",
	"golang", "ruby", "kotlin", "swift", "html", "css", "react",
	"angular", "vue", "node.js", "django", "laravel", "flutter",
	"sql", "mysql", "postgresql", "mongodb", "excel", "power bi",
	"tableau", "data analysis", "data entry", "machine learning",
	"docker", "kubernetes", "aws", "azure", "git", "linux",
	"networking", "cybersecurity", "graphic design", "photoshop",
	"wordpress", "seo", "digital marketing",
	// General professional
	"accounting", "bookkeeping", "auditing", "payroll", "budgeting",
	"financial reporting", "procurement", "logistics", "supply chain",
	"inventory management", "project management", "monitoring and evaluation",
	"human resources", "recruitment", "customer service", "sales",
	"marketing", "business development", "report writing",
	"quickbooks", "microsoft office", "teaching", "nursing",
	"midwifery", "pharmacy", "laboratory", "public health",
	"community health", "agriculture", "agronomy", "surveying",
	"construction", "carpentry", "plumbing", "welding", "electrical",
	"masonry", "tailoring", "catering", "driving", "security",
}

var defaultSoftSkills = []string{
	"communication", "leadership", "teamwork", "problem solving",
	"critical thinking", "time management", "adaptability",
	"creativity", "attention to detail", "negotiation",
	"decision making", "conflict resolution", "public speaking",
	"mentoring", "collaboration", "organization", "multitasking",
	"work ethic", "interpersonal skills",
}

var defaultDegrees = []string{
	"phd", "doctorate", "masters", "master of", "msc", "mba", "ma",
	"bachelor", "bachelors", "bsc", "beng", "ba", "llb", "bed",
	"higher national diploma", "hnd", "diploma", "certificate in",
	"associate degree", "wassce",
}

var defaultInstitutions = []string{
	"university", "college", "institute", "polytechnic", "academy",
	"fourah bay college", "njala university", "university of sierra leone",
	"university of makeni", "unimak", "limkokwing", "ipam",
	"milton margai", "ernest bai koroma university", "ebku",
	"freetown teachers college", "eastern polytechnic",
}

var defaultFields = []string{
	"computer science", "information technology", "software engineering",
	"engineering", "business administration", "economics", "finance",
	"accounting", "banking", "law", "medicine", "nursing", "pharmacy",
	"public health", "agriculture", "education", "social work",
	"mass communication", "journalism", "political science",
	"international relations", "mathematics", "statistics",
	"environmental science", "geology", "marketing", "management",
	"human resource management", "procurement", "logistics",
}

var defaultLanguages = []string{
	"english", "krio", "french", "arabic", "mende", "temne", "limba",
	"fula", "susu", "kono", "mandingo", "spanish", "portuguese",
	"chinese", "german",
}

var defaultCertifications = []string{
	"acca", "cpa", "cima", "cfa", "pmp", "prince2", "ccna", "ccnp",
	"comptia", "aws certified", "azure certified", "google certified",
	"cisco certified", "microsoft certified", "oracle certified",
	"certified public accountant", "chartered accountant",
	"certified nurse", "registered nurse", "teaching certificate",
	"trcsl", "first aid certified", "hse certified", "iosh", "nebosh",
}

// defaultLocationHubs are the towns and cities recognized as Sierra
// Leone employment hubs, ordered roughly by labor-market size. The
// bare country name is matched last as a catch-all.
var defaultLocationHubs = []string{
	"freetown", "bo", "kenema", "makeni", "koidu", "waterloo", "lungi",
	"port loko", "kabala", "magburaka", "moyamba", "kailahun",
	"bonthe", "pujehun", "kambia", "falaba", "karene", "western area",
	"sierra leone",
}

var defaultTitles = []string{
	"director", "manager", "supervisor", "coordinator", "officer",
	"engineer", "developer", "programmer", "analyst", "consultant",
	"accountant", "auditor", "teacher", "lecturer", "nurse", "midwife",
	"pharmacist", "technician", "administrator", "assistant",
	"specialist", "agent", "cashier", "clerk", "driver", "electrician",
	"designer", "architect", "surveyor", "advisor",
}
