package internal

// Version is the imgtrans release version
const Version = "0.1.0"
