package resend

// Version is the client library version reported in the default User-Agent.
const Version = "1.4.0"

const defaultUserAgent = "resend-go/" + Version
