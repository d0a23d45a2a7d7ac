// Package http provides HTTP handlers and middleware for the scheduler API.
//
// The router exposes the following endpoints under the /api prefix:
//   - GET /api/assignments: joined assignment listing with day names and
//     12-hour clock times, ordered by day, start time, building, room.
//   - POST /api/assignments: resolves a pending request into an assignment.
//     Body: {"requestID","roomID","dayOfWeek","startTime","endTime"}. Responds
//     201 with {"message","assignmentId"}, 409 on slot or blackout conflict,
//     404 when the request does not exist, 400 on validation failure.
//   - GET /api/requests, POST /api/requests: pending request listing and
//     submission exchanging the payloads defined in request_handler.go. The
//     `cardBltID` body field carries the preferred building ID.
//   - GET /api/departments, GET /api/rooms: catalog listings populating the
//     submission form.
//   - POST /api/blackouts: records a weekly room unavailability window.
//   - POST /api/login: placeholder credential check returning {"ok","role"}.
//
// Errors are rendered as {"error": "<message>"}. Request/response DTOs live
// alongside their respective handlers so tests and documentation share the
// same ground truth.
package http
