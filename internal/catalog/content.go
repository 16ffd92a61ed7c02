package catalog

// Static site content shared across pages. Like the service catalog, these
// tables are immutable at runtime.

// Summaries are the six featured services on the home page grid.
var Summaries = []ServiceSummary{
	{Name: "AC Installation", Slug: "ac-installation", Icon: "snowflake", Description: "High-efficiency air conditioner installation for ultimate tropical comfort."},
	{Name: "AC Repair", Slug: "ac-repair", Icon: "tools", Description: "Fast, reliable repairs to get your AC running smoothly again."},
	{Name: "Heating & Furnace Repair", Slug: "furnace-repair", Icon: "fire", Description: "Expert furnace and heating system repairs to keep you warm during cool seasons."},
	{Name: "Heat Pump Services", Slug: "heat-pump-services", Icon: "fan", Description: "Efficient all-in-one systems for both heating and cooling your home."},
	{Name: "Duct Cleaning", Slug: "duct-cleaning", Icon: "wind", Description: "Improve your indoor air quality with our professional duct cleaning services."},
	{Name: "Maintenance Plans", Slug: "maintenance-plans", Icon: "calendar-check", Description: "Join our Comfort Plan for regular tune-ups and priority service."},
}

// MegaMenu groups every service link shown in the header navigation.
var MegaMenu = []MenuGroup{
	{
		Category: "Cooling",
		Services: []MenuLink{
			{Name: "AC Installation", Href: "/services/ac-installation"},
			{Name: "AC Repair", Href: "/services/ac-repair"},
			{Name: "Ductless Systems", Href: "/services/ductless-systems"},
			{Name: "Heat Pump Services", Href: "/services/heat-pump-services"},
		},
	},
	{
		Category: "Heating",
		Services: []MenuLink{
			{Name: "Furnace Installation", Href: "/services/furnace-installation"},
			{Name: "Furnace Repair", Href: "/services/furnace-repair"},
			{Name: "Boiler Services", Href: "/services/boiler-services"},
		},
	},
	{
		Category: "Air Quality",
		Services: []MenuLink{
			{Name: "Duct Cleaning", Href: "/services/duct-cleaning"},
			{Name: "Air Purifiers", Href: "/services/air-purifiers"},
			{Name: "Humidifiers & Dehumidifiers", Href: "/services/humidifiers"},
		},
	},
	{
		Category: "Maintenance & Commercial",
		Services: []MenuLink{
			{Name: "System Tune-Up", Href: "/services/system-tune-up"},
			{Name: "Maintenance Plans", Href: "/services/maintenance-plans"},
			{Name: "Commercial HVAC", Href: "/services/commercial-hvac"},
		},
	},
}

var TrustBadges = []TrustBadge{
	{Icon: "shield", Text: "DTI Licensed & DTI Insured"},
	{Icon: "award", Text: "BIR Accredited"},
	{Icon: "star", Text: "5-Star Google Reviews"},
	{Icon: "clock", Text: "24/7 Emergency Service"},
}

// RepairProcess is the generic four-step process shown on the home page.
var RepairProcess = []ProcessStep{
	{Number: 1, Title: "Diagnose", Description: "We'll perform a thorough inspection to pinpoint the exact cause of the problem."},
	{Number: 2, Title: "Quote", Description: "We provide a clear explanation of the issue and an upfront, transparent price quote."},
	{Number: 3, Title: "Repair", Description: "Our certified technicians use quality parts to perform the necessary repairs efficiently."},
	{Number: 4, Title: "Test", Description: "We test the system thoroughly to ensure it's running safely and effectively before we leave."},
}

var SellingPoints = []SellingPoint{
	{Icon: "shield", Title: "Safety Certified", Description: "Our technicians are fully certified and trained to handle all repairs safely, protecting your home and family."},
	{Icon: "handshake", Title: "Warranty on Parts", Description: "We stand by our work with a comprehensive warranty on all parts and labor for your peace of mind."},
	{Icon: "star", Title: "Increased Efficiency", Description: "A professional repair can improve your furnace's efficiency, lowering your energy bills."},
}

var Testimonials = []Testimonial{
	{
		Quote:    "KlimaPro PH was a lifesaver! Our AC went out during the hot season, and they had a technician here the same day. Professional, quick, and reasonably priced. Highly recommend!",
		Name:     "Maria Santos",
		Location: "Quezon City, Metro Manila",
		Rating:   5,
	},
	{
		Quote:    "The team that installed our new AC system was fantastic. They were clean, respectful of our home, and explained everything clearly. The new system works perfectly.",
		Name:     "Jose Reyes",
		Location: "Makati City, Metro Manila",
		Rating:   5,
	},
	{
		Quote:    "I signed up for their maintenance plan last year and it's been great. Two check-ups a year gives me peace of mind, and the priority service is a nice perk. Great value.",
		Name:     "Ana Cruz",
		Location: "Cebu City, Cebu",
		Rating:   5,
	},
}

var FAQs = []FAQ{
	{
		Question: "How often should I get my HVAC system serviced?",
		Answer:   "We recommend professional maintenance twice a year. An AC tune-up in the spring and a furnace check-up in the fall ensures your system runs efficiently and helps prevent costly breakdowns.",
	},
	{
		Question: "What are the signs that I might need a new AC unit?",
		Answer:   "Common signs include your unit being over 10-15 years old, frequent and costly repairs, high energy bills, inconsistent temperatures, and strange noises. We can provide a free consultation to assess your system.",
	},
	{
		Question: "Do you offer 24/7 emergency services?",
		Answer:   "Yes, we do! We understand that HVAC emergencies can happen at any time. Our technicians are on-call 24/7 to provide prompt and reliable emergency repair services for your heating and cooling systems.",
	},
	{
		Question: "What is a ductless mini-split system?",
		Answer:   "A ductless mini-split is a highly efficient heating and cooling system that doesn't require traditional ductwork. It's an excellent solution for home additions, older homes, or for creating specific temperature zones within your house.",
	},
	{
		Question: "What are the benefits of joining the Comfort Plan?",
		Answer:   "Our Comfort Plan members enjoy two annual tune-ups, priority scheduling for service calls, exclusive discounts on repairs and parts, and no overtime charges. It's the best way to ensure your system's longevity and performance.",
	},
}
