package commands

type PwdkekCommand struct {
	Estimate EstimateCommand `command:"estimate" description:"Estimate the strength of passwords given as arguments or on STDIN"`
	Audit    AuditCommand    `command:"audit" description:"Report weak passwords in a file or STDIN"`
	Compact  CompactCommand  `command:"compact" description:"Build the quantized model of a dataset"`
	Inspect  InspectCommand  `command:"inspect" description:"Show the transitions of a quantized model"`
	Prepare  PrepareCommand  `command:"prepare" description:"Filter and sort a raw password list into a dataset"`
	Fetch    FetchCommand    `command:"fetch" description:"Download and prepare a built-in dataset"`
	Serve    ServeCommand    `command:"serve" description:"Serve estimates over HTTP"`
	Update   UpdateCommand   `command:"update" description:"Update pwdkek to the latest version"`
	Version  VersionCommand  `command:"version" description:"Displays pwdkek version" alias:"V"`
}

var Pwdkek PwdkekCommand
