package platform

// defaultListLimit caps list endpoints when the caller does not set one.
const defaultListLimit = 50
