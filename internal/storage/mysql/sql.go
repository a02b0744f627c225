package mysql

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const listHotelsSQL = `
SELECT id, name, image, created_at, updated_at
FROM hotels
ORDER BY id
`

const getHotelSQL = `
SELECT id, name, image, created_at, updated_at
FROM hotels
WHERE id = ?
`

const listRoomsSQL = `
SELECT id, name, capacity, hotel_id, created_at, updated_at
FROM rooms
WHERE hotel_id = ?
ORDER BY id
`

const findEnrollmentSQL = `
SELECT id, user_id, name, created_at, updated_at
FROM enrollments
WHERE user_id = ?
`

// A ticket always travels with its type; the join is part of the contract.
// Newest ticket wins if the platform ever left more than one behind.
const findTicketSQL = `
SELECT
  t.id,
  t.enrollment_id,
  t.status,
  tt.id,
  tt.name,
  tt.price,
  tt.is_remote,
  tt.includes_hotel
FROM tickets t
JOIN ticket_types tt ON tt.id = t.ticket_type_id
WHERE t.enrollment_id = ?
ORDER BY t.id DESC
LIMIT 1
`

const findSessionSQL = `
SELECT id, user_id, token
FROM sessions
WHERE token = ?
LIMIT 1
`
