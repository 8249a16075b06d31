// Package site wires the sitekit packages into a single page enhancement
// service: a session with a signed token and a bounded interaction log,
// host event routing to navigation and animations, toast notifications on
// one surface, and a form submission pipeline that screens, sanitizes,
// validates and rate-limits input before handing it to a Submitter.
//
// The service is built over a view adapter and a scheduler, so the whole
// module runs headless under tests with a MemoryView and a virtual clock.
//
// Usage:
//
//	var cfg site.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	svc, err := site.New(cfg, domView, []string{"home", "services", "contact"})
//	if err != nil {
//		// the view already shows the static fallback
//		log.Fatal(err)
//	}
//
//	svc.HandleEvent(site.Event{Kind: site.EventClick, Target: "nav-services"})
//	err = svc.HandleSubmit(ctx, formFields)
package site
