// Package html provides a Normaliser for HTML books, such as the HTML
// editions published by Project Gutenberg. Markup, scripts and styles are
// removed and entities decoded so only the readable text is counted.
package html
