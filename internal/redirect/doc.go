// Package redirect publishes a documentation asset under the built site's
// downloads directory and writes a small HTML page at a short URL that sends
// browsers to it.
//
// For an asset "JakubSejdak_CV.pdf" and URL "/cv" the generator produces:
//
//	<site_dir>/downloads/JakubSejdak_CV.pdf
//	<site_dir>/cv/index.html   (redirects to /downloads/JakubSejdak_CV.pdf)
//
// A missing source asset is reported on the diagnostic writer and does not
// fail the build. Every other filesystem error does.
package redirect
