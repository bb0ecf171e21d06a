package dto

// CreateUpdateUserDTO é o corpo de criação/atualização de usuário e de
// produtor. Campos desconhecidos são rejeitados pelo binding antes de
// chegarem ao núcleo.
type CreateUpdateUserDTO struct {
	Name     string `json:"name" binding:"required,max=100"`
	CPFCNPJ  string `json:"cpf_cnpj" binding:"required,max=18"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ordinary admin"`
	Active   *bool  `json:"active" binding:"required"`
}
