// Package onboard holds the content of the supplier onboarding guides.
//
// The guides ship in three languages. Each language is a ContentSet in a
// Catalog that is compiled into the binary as YAML and decoded once at start.
// Validate checks that every set is complete and structurally identical to
// the others before anything is rendered.
//
// The package also owns the colour palette and the error taxonomy shared by
// the PDF renderer in pkt.systems/onboard/pdf.
//
// Example:
//
//	catalog, err := onboard.DefaultCatalog()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := catalog.Validate(); err != nil {
//		log.Fatal(err)
//	}
//	en, _ := catalog.Get("en")
//	_ = onboard.WritePlainText(os.Stdout, en, catalog.ContactLine(en), 80)
package onboard
