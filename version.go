package packsdk

// Version of the SDK.
const Version = "0.1.0"
