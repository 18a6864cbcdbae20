package models

type Department string

const (
	DepartmentCustomerService Department = "cs"
	DepartmentFinance         Department = "fin"
	DepartmentAdministration  Department = "adm"
	DepartmentProduction      Department = "prod"
	DepartmentService         Department = "serv"
	DepartmentHR              Department = "hr"
)

func (d Department) Valid() bool {
	switch d {
	case DepartmentCustomerService, DepartmentFinance, DepartmentAdministration,
		DepartmentProduction, DepartmentService, DepartmentHR:
		return true
	}
	return false
}

type ContractType string

const (
	ContractFullTime  ContractType = "full"
	ContractPartTime  ContractType = "part"
	ContractTemporary ContractType = "temp"
	ContractIntern    ContractType = "intern"
)

func (c ContractType) Valid() bool {
	switch c {
	case ContractFullTime, ContractPartTime, ContractTemporary, ContractIntern:
		return true
	}
	return false
}
