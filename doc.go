/*
Package starrating is a headless star rating widget: the interaction logic behind
a row of N stars that previews a rating under the pointer, commits it on click,
supports half-star precision and clears the rating when the committed star is
clicked again.

# Concept

The widget owns no pixels. A host (a terminal, a web page, an image renderer)
feeds it pointer samples, each naming the star under the pointer and the
horizontal position within that star, and paints the frames the widget hands
to its surface. The resolution rules, the state machine and the geometry live
in separate packages so every surface behaves identically.

# Usage

	w, err := starrating.New(
		starrating.WithStarsLength(5),
		starrating.WithHalfRating(true),
		starrating.WithOnRatingChange(func(r float64) {
			fmt.Println("rated", r)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	w.OnPointerMove(domain.At(2, 0.2)) // preview 2.5
	w.OnClick(domain.At(2, 0.2))       // commit 2.5
	w.OnPointerLeave()
	fmt.Println(w.DisplayedRating())   // 2.5

# Packages

  - pkg/resolve: pointer sample to rating, clamping, per-glyph fill.
  - pkg/layout: row geometry, hit testing, star outlines.
  - pkg/config: config files, props bags and STARRATING_* variables.
  - pkg/session: registry of live widgets for servers.
  - pkg/adapters: preset catalogs, HTTP and MCP surfaces.
  - pkg/observability: lifecycle hooks for logs and Prometheus.

Widgets are not safe for concurrent use. Servers serialize access per widget
through session.Manager.
*/
package starrating
