package web

// pageTemplate is the Go html/template rendered for every page. A single
// layout with a kind switch keeps the header, footer, and metadata tags
// in one place.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Meta.Title}}</title>
  <meta name="description" content="{{.Meta.Description}}">
  <meta property="og:title" content="{{.Meta.Title}}">
  <meta property="og:description" content="{{.Meta.Description}}">
  <meta property="og:type" content="website">
  {{if .CanonicalURL}}<meta property="og:url" content="{{.CanonicalURL}}">
  <link rel="canonical" href="{{.CanonicalURL}}">{{end}}
  <meta name="twitter:card" content="summary">
  <meta name="twitter:title" content="{{.Meta.Title}}">
  <meta name="twitter:description" content="{{.Meta.Description}}">
  <link rel="stylesheet" href="/static/style.css">
</head>
<body>
  <header class="site-header">
    <a href="/" class="logo">KlimaPro <span>PH</span></a>
    <nav class="main-nav">
      <a href="/">Home</a>
      <div class="mega-menu">
        <span class="mega-trigger">Services</span>
        <div class="mega-panel">
          {{range .MegaMenu}}
          <div class="mega-group">
            <h4>{{.Category}}</h4>
            <ul>
              {{range .Services}}<li><a href="{{.Href}}">{{.Name}}</a></li>{{end}}
            </ul>
          </div>
          {{end}}
        </div>
      </div>
      <a href="/about">About</a>
      <a href="/contact">Contact</a>
    </nav>
    <a href="/contact" class="cta-button">Book Now</a>
  </header>

  <main>
  {{if eq .Kind "service"}}
    <section class="service-hero" {{if .Service.ImageURL}}style="background-image: url('{{.Service.ImageURL}}')"{{end}}>
      <h1>{{.Service.Name}}</h1>
      <p class="tagline">{{.Service.Tagline}}</p>
    </section>
    <section class="service-body">
      <div class="service-description">{{.DescriptionHTML}}</div>
      {{if .Service.Benefits}}
      <h2>Benefits</h2>
      <ul class="benefits">
        {{range .Service.Benefits}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
      {{if .Service.ProcessSteps}}
      <h2>Our Process</h2>
      <ol class="process">
        {{range .Service.ProcessSteps}}
        <li><strong>{{.Title}}</strong> {{.Description}}</li>
        {{end}}
      </ol>
      {{end}}
      {{if .Service.GalleryImages}}
      <div class="gallery">
        {{range .Service.GalleryImages}}<img src="{{.}}" alt="{{$.Service.Name}}" loading="lazy">{{end}}
      </div>
      {{end}}
    </section>
  {{else if eq .Kind "about"}}
    <section class="page-section">
      <h1>About KlimaPro PH</h1>
      <p>Our experienced and certified team is dedicated to providing top-quality air conditioning and HVAC services in Metro Manila and across the Philippines.</p>
      <div class="selling-points">
        {{range .SellingPoints}}
        <div class="point-card">
          <h3>{{.Title}}</h3>
          <p>{{.Description}}</p>
        </div>
        {{end}}
      </div>
    </section>
  {{else if eq .Kind "contact"}}
    <section class="page-section">
      <h1>Contact Us</h1>
      <p>Schedule your service or get a free estimate. Fill out the form below for fast, friendly service.</p>
      <form class="contact-form" method="post" action="/api/contact" id="contact-form">
        <label>Full Name<input type="text" name="name" required></label>
        <label>Phone Number<input type="tel" name="phone" required></label>
        <label>Email Address<input type="email" name="email" required></label>
        <label>How can we help?<textarea name="message" rows="5" required></textarea></label>
        <input type="text" name="company" class="hp-field" tabindex="-1" autocomplete="off" aria-hidden="true">
        {{if .RecaptchaSiteKey}}<div class="g-recaptcha" data-sitekey="{{.RecaptchaSiteKey}}"></div>{{end}}
        <button type="submit">Send Message</button>
      </form>
    </section>
  {{else}}
    <section class="hero">
      <h1>Fast &amp; Reliable AC Service in Metro Manila</h1>
      <p>24/7 emergency service available. Book your free estimate today!</p>
      <a href="/contact" class="cta-button">Get a Free Estimate</a>
    </section>
    <section class="trust-badges">
      {{range .TrustBadges}}<span class="badge">{{.Text}}</span>{{end}}
    </section>
    <section class="services-grid">
      <h2>Our Services</h2>
      <div class="grid">
        {{range .Summaries}}
        <a class="service-card" href="/services/{{.Slug}}">
          <h3>{{.Name}}</h3>
          <p>{{.Description}}</p>
        </a>
        {{end}}
      </div>
    </section>
    <section class="process-section">
      <h2>How It Works</h2>
      <ol class="process">
        {{range .RepairProcess}}
        <li><strong>{{.Title}}</strong> {{.Description}}</li>
        {{end}}
      </ol>
    </section>
    <section class="testimonials">
      <h2>What Our Customers Say</h2>
      {{range .Testimonials}}
      <blockquote>
        <p>{{.Quote}}</p>
        <footer>{{.Name}}, {{.Location}}</footer>
      </blockquote>
      {{end}}
    </section>
    <section class="faq">
      <h2>Frequently Asked Questions</h2>
      {{range .FAQs}}
      <details>
        <summary>{{.Question}}</summary>
        <p>{{.Answer}}</p>
      </details>
      {{end}}
    </section>
  {{end}}
  </main>

  <footer class="site-footer">
    <p>&copy; {{.Year}} KlimaPro PH. Serving Metro Manila and across the Philippines.</p>
  </footer>
</body>
</html>`

// cssContent is the stylesheet served at /static/style.css.
const cssContent = `:root {
  --accent: #1971c2;
  --accent-dark: #1864ab;
  --text: #212529;
  --text-muted: #868e96;
  --bg: #ffffff;
  --bg-alt: #f1f3f5;
  --border: #dee2e6;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
}

.site-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 12px 32px;
  border-bottom: 1px solid var(--border);
  position: sticky;
  top: 0;
  background: var(--bg);
  z-index: 100;
}

.logo { font-size: 1.3rem; font-weight: 700; color: var(--text); text-decoration: none; }
.logo span { color: var(--accent); }

.main-nav { display: flex; gap: 24px; align-items: center; }
.main-nav a, .mega-trigger { color: var(--text); text-decoration: none; font-weight: 500; cursor: pointer; }
.main-nav a:hover { color: var(--accent); }

.mega-menu { position: relative; }
.mega-panel {
  display: none;
  position: absolute;
  top: 100%;
  left: 50%;
  transform: translateX(-50%);
  background: var(--bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  box-shadow: 0 4px 12px rgba(0,0,0,0.1);
  padding: 20px;
  gap: 32px;
  min-width: 640px;
}
.mega-menu:hover .mega-panel { display: flex; }
.mega-group h4 { font-size: 0.8rem; text-transform: uppercase; color: var(--text-muted); margin-bottom: 8px; }
.mega-group ul { list-style: none; }
.mega-group li { margin-bottom: 4px; }

.cta-button {
  background: var(--accent);
  color: #fff;
  padding: 10px 20px;
  border-radius: 6px;
  text-decoration: none;
  font-weight: 600;
}
.cta-button:hover { background: var(--accent-dark); }

.hero { text-align: center; padding: 80px 24px; background: var(--bg-alt); }
.hero h1 { font-size: 2.4rem; margin-bottom: 12px; }
.hero p { color: var(--text-muted); margin-bottom: 24px; }

.trust-badges { display: flex; justify-content: center; gap: 16px; padding: 20px; flex-wrap: wrap; }
.badge { background: var(--bg-alt); border-radius: 16px; padding: 6px 14px; font-size: 0.85rem; }

.services-grid, .process-section, .testimonials, .faq, .page-section, .service-body {
  max-width: 960px;
  margin: 0 auto;
  padding: 40px 24px;
}
.services-grid h2, .process-section h2, .testimonials h2, .faq h2 { margin-bottom: 20px; }

.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 16px; }
.service-card {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 20px;
  text-decoration: none;
  color: inherit;
  transition: border-color 0.15s, box-shadow 0.15s;
}
.service-card:hover { border-color: var(--accent); box-shadow: 0 2px 8px rgba(0,0,0,0.08); }
.service-card p { color: var(--text-muted); font-size: 0.9rem; margin-top: 6px; }

.process { padding-left: 24px; }
.process li { margin-bottom: 10px; }

.testimonials blockquote {
  border-left: 3px solid var(--accent);
  background: var(--bg-alt);
  padding: 16px 20px;
  margin-bottom: 12px;
  border-radius: 0 6px 6px 0;
}
.testimonials footer { color: var(--text-muted); font-size: 0.85rem; margin-top: 6px; }

.faq details { border-bottom: 1px solid var(--border); padding: 12px 0; }
.faq summary { cursor: pointer; font-weight: 600; }
.faq details p { margin-top: 8px; color: var(--text-muted); }

.service-hero {
  text-align: center;
  padding: 72px 24px;
  background: var(--bg-alt) center/cover no-repeat;
  color: var(--text);
}
.service-hero .tagline { color: var(--text-muted); margin-top: 8px; }

.benefits { padding-left: 24px; margin-bottom: 24px; }
.gallery { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 12px; margin-top: 24px; }
.gallery img { width: 100%; border-radius: 8px; }

.contact-form { display: flex; flex-direction: column; gap: 14px; max-width: 520px; margin-top: 24px; }
.contact-form label { display: flex; flex-direction: column; gap: 4px; font-weight: 500; font-size: 0.9rem; }
.contact-form input, .contact-form textarea {
  padding: 10px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  font: inherit;
}
.contact-form button {
  background: var(--accent);
  color: #fff;
  border: none;
  border-radius: 6px;
  padding: 12px;
  font-weight: 600;
  cursor: pointer;
}
.contact-form button:hover { background: var(--accent-dark); }
.hp-field { position: absolute; left: -9999px; }

.selling-points { display: grid; grid-template-columns: repeat(auto-fill, minmax(240px, 1fr)); gap: 16px; margin-top: 24px; }
.point-card { border: 1px solid var(--border); border-radius: 8px; padding: 20px; }
.point-card p { color: var(--text-muted); font-size: 0.9rem; margin-top: 6px; }

.site-footer {
  border-top: 1px solid var(--border);
  text-align: center;
  padding: 24px;
  color: var(--text-muted);
  font-size: 0.85rem;
  margin-top: 40px;
}

@media (max-width: 768px) {
  .mega-panel { min-width: 0; flex-direction: column; gap: 16px; }
  .hero h1 { font-size: 1.7rem; }
}
`
