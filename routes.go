package httpecho

import "github.com/go-chi/chi/v5"

var anyMethod = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

func (s *Server) routes(r chi.Router) {
	r.Get("/get", handle(s.echo))
	r.Post("/post", handle(s.echo))
	r.Put("/put", handle(s.echo))
	r.Patch("/patch", handle(s.echo))
	r.Delete("/delete", handle(s.echo))

	for _, method := range anyMethod {
		r.Method(method, "/anything", handle(s.anything))
		r.Method(method, "/anything/*", handle(s.anything))
		r.Method(method, "/status/{code}", handle(s.status))
	}

	r.Get("/headers", handle(s.headers))
	r.Get("/ip", handle(s.ip))
	r.Get("/user-agent", handle(s.userAgent))

	r.Get("/cookies", handle(s.getCookies))
	r.Get("/cookies/set", handle(s.setCookies))
	r.Get("/cookies/set/{name}/{value}", handle(s.setCookie))
	r.Get("/cookies/delete", handle(s.deleteCookies))

	r.Get("/cache", handle(s.cache))
	r.Get("/cache/{seconds}", handle(s.cacheFor))
	r.Get("/etag/{value}", handle(s.etag))

	r.Get("/response-headers", handle(s.responseHeaders))
	r.Post("/response-headers", handle(s.responseHeaders))

	r.Get("/basic-auth/{user}/{passwd}", handle(s.basicAuth))
	r.Get("/bearer", handle(s.bearer))

	if s.metrics != nil {
		r.Method("GET", "/metrics", s.metrics.handler())
	}
}
