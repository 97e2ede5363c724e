// Package router implements hue's route table and request dispatch.
//
// A Router collects routes for a view. Page routes serve full page loads;
// fragment routes serve partial HTML for AJAX swaps and refuse plain
// navigation:
//
//	r := router.New()
//	r.Get("/", index)
//	r.FragmentGet("comments/", listComments)
//	r.FragmentPost("comments/", createComment, router.Body[CreateComment]())
//
// Mount binds the collected routes onto a chi.Router. Routes sharing a path
// collapse into one endpoint that demultiplexes by method; a method mismatch
// yields 405, a fragment route hit without AJAX headers yields 400, and a
// request body that fails validation yields 422.
package router
