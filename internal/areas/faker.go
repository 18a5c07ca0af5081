package areas

import (
	"fmt"
	"math/rand"
	"time"
)

// Faker produces the synthetic clinic-domain values the bundled areas
// insert. Not realistic data; just varied enough to exercise the
// application with.
type Faker struct {
	rand    *rand.Rand
	counter int
}

func NewFaker() *Faker {
	return &Faker{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (f *Faker) Name() string {
	firstNames := []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	return firstNames[f.rand.Intn(len(firstNames))] + " " + lastNames[f.rand.Intn(len(lastNames))]
}

func (f *Faker) ClinicName() string {
	prefixes := []string{"Riverside", "Oakwood", "Summit", "Harbor", "Lakeview", "Cedar", "Maple", "Hillcrest"}
	suffixes := []string{"Clinic", "Medical Center", "Health Practice", "Family Care"}
	return prefixes[f.rand.Intn(len(prefixes))] + " " + suffixes[f.rand.Intn(len(suffixes))]
}

func (f *Faker) Email() string {
	f.counter++
	domains := []string{"example.com", "test.com", "demo.com", "mail.com"}
	return fmt.Sprintf("user%d_%d@%s", f.counter, f.rand.Intn(100000), domains[f.rand.Intn(len(domains))])
}

func (f *Faker) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", f.rand.Intn(1000), f.rand.Intn(1000), f.rand.Intn(10000))
}

func (f *Faker) Address() string {
	return fmt.Sprintf("%d Main Street, City, State %05d", f.rand.Intn(9999)+1, f.rand.Intn(100000))
}

func (f *Faker) Role() string {
	roles := []string{"admin", "practitioner", "receptionist", "billing"}
	return roles[f.rand.Intn(len(roles))]
}

func (f *Faker) VisitReason() string {
	reasons := []string{
		"Routine checkup",
		"Follow-up visit",
		"Initial consultation",
		"Vaccination",
		"Lab results review",
		"Physical therapy session",
		"Prescription renewal",
	}
	return reasons[f.rand.Intn(len(reasons))]
}

func (f *Faker) AppointmentStatus() string {
	statuses := []string{"scheduled", "completed", "cancelled", "no_show"}
	return statuses[f.rand.Intn(len(statuses))]
}

func (f *Faker) InvoiceStatus() string {
	statuses := []string{"draft", "issued", "paid", "overdue"}
	return statuses[f.rand.Intn(len(statuses))]
}

// Fee returns an amount in cents between 25.00 and 400.00.
func (f *Faker) Fee() int {
	return 2500 + f.rand.Intn(37500)
}

// BirthDate returns a date between roughly 5 and 90 years ago.
func (f *Faker) BirthDate() time.Time {
	years := 5 + f.rand.Intn(85)
	days := f.rand.Intn(365)
	return time.Now().AddDate(-years, 0, -days)
}

// PastTime returns a timestamp within the last year.
func (f *Faker) PastTime() time.Time {
	return time.Now().AddDate(0, 0, -f.rand.Intn(365))
}

// FutureTime returns a timestamp within the next 60 days, on the hour.
func (f *Faker) FutureTime() time.Time {
	t := time.Now().AddDate(0, 0, f.rand.Intn(60))
	return t.Truncate(time.Hour)
}
