package notify

// resetIDsForTest restarts the id sequence as if the process were new.
func resetIDsForTest() { lastID.Store(0) }
